package main

import "github.com/charmbracelet/lipgloss"

var (
	emptyPageStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	emptyHintStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#ff9f1c")).Bold(true)

	dialogBackdrop = lipgloss.Color("236")
)
