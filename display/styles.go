// This file is part of Stackscope.
//
// Stackscope is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Stackscope is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Stackscope.  If not, see <https://www.gnu.org/licenses/>.

package display

import "github.com/charmbracelet/lipgloss"

type styles struct {
	panel        lipgloss.Style
	title        lipgloss.Style
	frame        lipgloss.Style
	selected     lipgloss.Style
	highlight    lipgloss.Style
	logError     lipgloss.Style
	connected    lipgloss.Style
	connecting   lipgloss.Style
	disconnected lipgloss.Style
	inconsistent lipgloss.Style
	help         lipgloss.Style
}

func newStyles() styles {
	return styles{
		panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#6C7086")).
			Padding(0, 1),
		title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#89B4FA")),
		frame: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6C7086")),
		selected: lipgloss.NewStyle().
			Reverse(true),
		highlight: lipgloss.NewStyle().
			Background(lipgloss.Color("215")).
			Foreground(lipgloss.Color("0")),
		logError: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F38BA8")),
		connected: lipgloss.NewStyle().
			Foreground(lipgloss.Color("82")).
			Bold(true),
		connecting: lipgloss.NewStyle().
			Foreground(lipgloss.Color("3")),
		disconnected: lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")),
		inconsistent: lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true),
		help: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6C7086")),
	}
}
