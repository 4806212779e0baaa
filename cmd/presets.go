package cmd

import (
	"fmt"
	"os"

	"github.com/jakejohns/chargon/internal/kdf"
	"github.com/jakejohns/chargon/internal/ui"
	"github.com/spf13/cobra"
)

var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "Show the bundled Argon2 cost presets",
	Run: func(cmd *cobra.Command, args []string) {
		for _, preset := range []kdf.Preset{kdf.PresetDefault, kdf.PresetSecure} {
			params := preset.Params()
			fmt.Fprintf(os.Stdout, "%s\t%s  t=%d  m=%d KiB  p=%d\n",
				ui.Highlight.Sprint(preset.String()),
				params.Variant, params.Iterations, params.MemoryKiB, params.Parallelism)
		}
		fmt.Fprintln(os.Stdout)
		fmt.Fprintln(os.Stdout, ui.Info.Sprint("→")+" Select with "+ui.Flag.Sprint("--secure")+
			" or "+ui.Code.Sprint(`defaults.preset = "secure"`)+" in your config file")
	},
}
