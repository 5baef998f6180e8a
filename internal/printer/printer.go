package printer

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
)

type Formatter func(string, ...interface{}) string

// Printer writes aligned status lines for one audit run. It is handed
// to the engine explicitly, there is no package level state.
type Printer struct {
	module string
	target string
	port   int
	config *PrinterConfig
}

type PrinterConfig struct {
	Writer               io.Writer
	FirstColumnFormatter Formatter
	OutputFormatter      Formatter
	SuccessFormatter     Formatter
	SuccessSymbol        string
	FailureFormatter     Formatter
	FailureSymbol        string
}

func DefaultPrinterConfig() *PrinterConfig {
	return &PrinterConfig{
		Writer:               os.Stdout,
		FirstColumnFormatter: color.New(color.FgBlue, color.Bold).SprintfFunc(),
		OutputFormatter:      color.New(color.FgHiYellow).SprintfFunc(),
		SuccessFormatter:     color.New(color.FgGreen, color.Bold).SprintfFunc(),
		FailureFormatter:     color.New(color.FgRed, color.Bold).SprintfFunc(),
		SuccessSymbol:        "[*]",
		FailureSymbol:        "[-]",
	}
}

func NewPrinter(module, target string, port int) *Printer {
	if target == "" {
		target = "localhost"
	}
	return &Printer{
		module: module,
		target: target,
		port:   port,
		config: DefaultPrinterConfig(),
	}
}

func (p *Printer) SetConfigs(cfg *PrinterConfig) *Printer {
	p.config = cfg
	return p
}

func (p *Printer) print(symbol string, msg ...string) {
	var row strings.Builder
	row.WriteString(p.config.FirstColumnFormatter("%-8s", p.module))
	row.WriteString(fmt.Sprintf("%-16s", p.target))
	row.WriteString(fmt.Sprintf("%-6d", p.port))

	var message strings.Builder
	for _, part := range msg {
		message.WriteString(fmt.Sprintf("%-40s", part))
		if len(part) > 37 {
			message.WriteString(fmt.Sprintf("%-3s", ""))
		}
	}

	var txt string
	if symbol != "" {
		txt = message.String()
	} else {
		txt = p.config.OutputFormatter(message.String())
	}
	fmt.Fprintf(p.config.Writer, "%s%s%s\n", row.String(), symbol, txt)
}

func (p *Printer) Print(msg ...string) {
	p.print("", msg...)
}

func (p *Printer) PrintSuccess(msg ...string) {
	p.print(
		p.config.SuccessFormatter("%s ", p.config.SuccessSymbol),
		msg...,
	)
}

func (p *Printer) PrintFailure(msg ...string) {
	p.print(
		p.config.FailureFormatter("%s ", p.config.FailureSymbol),
		msg...,
	)
}

func (p *Printer) PrintInfo(msg ...string) {
	p.print(
		color.BlueString("%s ", p.config.SuccessSymbol),
		msg...,
	)
}
