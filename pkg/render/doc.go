// Package render draws the help screen, the name banner and error reports
// for a terminal.
//
// Package: render
// Title: Terminal Renderer
// Description: Implements the cli.HelpRenderer, cli.ErrorRenderer and
//              cli.BannerRenderer interfaces with lipgloss styles. Colours
//              are chosen per writer, so output into pipes and buffers stays
//              plain text. Terminal size and TTY detection use x/term.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
package render
