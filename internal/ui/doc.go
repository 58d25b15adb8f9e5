package ui

// Package ui contains the Fyne-based desktop user interface for the
// application. It wires the input fields to the power-triangle calculator
// and renders the diagram, the results panel, and the computation history.
// All UI strings are localized via Localization.
