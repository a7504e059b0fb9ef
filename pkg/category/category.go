// Package category defines the closed set of built-in spending categories
// and the user-defined custom label escape hatch.
package category

import "strings"

// Kind discriminates between built-in and user-defined categories.
type Kind uint8

const (
	// KindBuiltIn marks one of the fixed spending categories below.
	KindBuiltIn Kind = iota
	// KindCustom marks a user-defined label.
	KindCustom
)

// Category is a tagged value: either a member of the built-in set or a
// custom label. It is comparable and usable as a map key; two categories
// are the same iff both fields are equal.
type Category struct {
	Kind Kind
	Name string
}

// Built-in categories. Miscellaneous is the catch-all the classifier
// falls back to when nothing else matches.
var (
	Coffee        = Category{KindBuiltIn, "Coffee"}
	Dining        = Category{KindBuiltIn, "Dining"}
	Groceries     = Category{KindBuiltIn, "Groceries"}
	Transport     = Category{KindBuiltIn, "Transport"}
	Shopping      = Category{KindBuiltIn, "Shopping"}
	Entertainment = Category{KindBuiltIn, "Entertainment"}
	Health        = Category{KindBuiltIn, "Health"}
	Fitness       = Category{KindBuiltIn, "Fitness"}
	Travel        = Category{KindBuiltIn, "Travel"}
	Utilities     = Category{KindBuiltIn, "Utilities"}
	Home          = Category{KindBuiltIn, "Home"}
	Electronics   = Category{KindBuiltIn, "Electronics"}
	Subscriptions = Category{KindBuiltIn, "Subscriptions"}
	Alcohol       = Category{KindBuiltIn, "Alcohol"}
	PersonalCare  = Category{KindBuiltIn, "Personal Care"}
	Education     = Category{KindBuiltIn, "Education"}
	Gifts         = Category{KindBuiltIn, "Gifts"}
	Miscellaneous = Category{KindBuiltIn, "Miscellaneous"}
)

var builtIns = []Category{
	Coffee, Dining, Groceries, Transport, Shopping, Entertainment,
	Health, Fitness, Travel, Utilities, Home, Electronics,
	Subscriptions, Alcohol, PersonalCare, Education, Gifts,
	Miscellaneous,
}

// BuiltIn returns the fixed category set in stable order.
func BuiltIn() []Category {
	out := make([]Category, len(builtIns))
	copy(out, builtIns)
	return out
}

// Custom wraps a user-defined label. The label is kept verbatim; matching
// against built-in names happens in Parse, not here.
func Custom(label string) Category {
	return Category{KindCustom, label}
}

// Parse maps a label onto a built-in category case-insensitively, falling
// back to a custom category carrying the label as given. An empty label
// parses to Miscellaneous.
func Parse(label string) Category {
	trimmed := strings.TrimSpace(label)
	if trimmed == "" {
		return Miscellaneous
	}
	for _, c := range builtIns {
		if strings.EqualFold(c.Name, trimmed) {
			return c
		}
	}
	return Category{KindCustom, trimmed}
}

// IsZero reports whether c is the zero value, which is not a valid category.
func (c Category) IsZero() bool {
	return c.Name == ""
}

func (c Category) String() string {
	return c.Name
}
