package commands

import (
	"pet-adoption/internal/tui"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newBrowseCmd(g *globals) *cobra.Command {
	var (
		admin   bool
		logFile string
	)

	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Open the interactive pet browser",
		Long: `Abre el navegador de terminal: home, listado con búsqueda y paginación,
adopciones y reseñas. Con --admin se habilitan alta, edición y borrado.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// la TUI ocupa la pantalla: los logs van a archivo o se descartan
			log := zap.NewNop()
			if logFile != "" {
				zc := zap.NewProductionConfig()
				zc.OutputPaths = []string{logFile}
				zc.ErrorOutputPaths = []string{logFile}
				l, err := zc.Build()
				if err != nil {
					return err
				}
				defer func() { _ = l.Sync() }()
				log = l
			}

			s, err := g.session(log)
			if err != nil {
				return err
			}
			return tui.Run(cmd.Context(), s, tui.Options{Admin: admin})
		},
	}

	cmd.Flags().BoolVar(&admin, "admin", false, "Enable create, edit and delete")
	cmd.Flags().StringVar(&logFile, "log-file", "", "Write client logs to this file")
	return cmd
}
