package display

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
)

var bannerStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("13")).
	Bold(true)

const bannerArt = `  ____    _    ____   ____    _    ____  _____
 / ___|  / \  / ___| / ___|  / \  |  _ \| ____|
| |     / _ \ \___ \| |     / _ \ | | | |  _|
| |___ / ___ \ ___) | |___ / ___ \| |_| | |___
 \____/_/   \_\____/ \____/_/   \_\____/|_____|`

// PrintBanner prints the ASCII art banner on stderr, alongside the log
// stream; the renderer's color profile decides whether it comes out
// styled or plain.
func PrintBanner() {
	fmt.Fprintln(os.Stderr, bannerStyle.Render(bannerArt))
}
