// Package cli handles cmd line input for DBG and testing the classifier interactively
package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/0xshadow-dev/skipwise-sub000/internal/logger"
	"github.com/0xshadow-dev/skipwise-sub000/internal/utils"
	"github.com/0xshadow-dev/skipwise-sub000/pkg/category"
	"github.com/0xshadow-dev/skipwise-sub000/pkg/classify"
)

var (
	categoryStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
	confidenceStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#286983", Dark: "#9ccfd8"})
	dimStyle        = lipgloss.NewStyle().Faint(true)
)

// InputHandler reads descriptions from stdin and prints the ranked
// classification for each, with an optional trace dump.
type InputHandler struct {
	engine       *classify.Engine
	log          *log.Logger
	altLimit     int
	showTrace    bool
	requestCount int
}

// NewInputHandler handles initialization of the InputHandler with basic parameters
func NewInputHandler(engine *classify.Engine, altLimit int, showTrace bool) *InputHandler {
	return &InputHandler{
		engine:    engine,
		log:       logger.New("skipwise"),
		altLimit:  altLimit,
		showTrace: showTrace,
	}
}

// Start begins the interface loop. Plain lines classify; ":learn
// <category>: <text>" records a correction. Loop terminates when stdin
// closes.
func (h *InputHandler) Start() error {
	h.log.Print("skipwise classify CLI")
	reader := bufio.NewReader(os.Stdin)
	h.log.Print("type a description and press Enter (':learn Category: text' to correct, Ctrl+C to exit):")

	for {
		fmt.Print("> ")
		line, err := reader.ReadString('\n')
		if err != nil {
			return err
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		h.handleInput(line)
	}
}

func (h *InputHandler) handleInput(line string) {
	h.requestCount++

	if rest, ok := strings.CutPrefix(line, ":learn "); ok {
		label, text, found := strings.Cut(rest, ":")
		if !found {
			h.log.Warn("usage: :learn Category: description")
			return
		}
		h.engine.LearnFromCorrection(strings.TrimSpace(text), category.Parse(strings.TrimSpace(label)))
		fmt.Println(dimStyle.Render("learned"))
		return
	}

	if utils.IsRepetitive(line) || utils.IsOnlyNumbers(line) {
		h.log.Debugf("skipping low-signal input %q", line)
		return
	}

	result := h.engine.Classify(line)
	fmt.Printf("%s  %s\n",
		categoryStyle.Render(result.Category.Name),
		confidenceStyle.Render(fmt.Sprintf("%.2f", result.Confidence)))
	fmt.Println(dimStyle.Render(result.Explanation))

	for i, alt := range result.Alternatives {
		if i >= h.altLimit {
			break
		}
		fmt.Printf("  %d. %s %.2f %s\n", i+1, alt.Category.Name, alt.Confidence, dimStyle.Render(string(alt.Algorithm)))
	}
	if h.showTrace {
		for _, line := range result.Trace {
			fmt.Println(dimStyle.Render("  · " + line))
		}
	}
}
