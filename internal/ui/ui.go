// Package ui provides shared helpers for terminal output
package ui

import (
	"fmt"
	"io"

	"github.com/pterm/pterm"
)

func Green(a any) string {
	return pterm.Green(a)
}

func Red(a any) string {
	return pterm.Red(a)
}

func Cyan(a any) string {
	return pterm.Cyan(a)
}

func Yellow(a any) string {
	return pterm.Yellow(a)
}

func Highlight(a any) string {
	return pterm.Bold.Sprint(a)
}

// PrintTable renders a boxed table with the first row as header.
func PrintTable(data [][]string, writer io.Writer) {
	table := pterm.DefaultTable
	table.Boxed = true

	str, err := table.WithHasHeader().WithData(data).Srender()
	if err != nil {
		pterm.Error.Printfln("Failed to output table: %s", err.Error())
		return
	}

	fmt.Fprintln(writer, str)
}
