package cmd

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/procsim/procsim/api"
)

var serveAddr string

// serveCmd starts the HTTP API front end over the simulation facade.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the scheduling simulator over HTTP",
	Run: func(cmd *cobra.Command, args []string) {
		app := api.New()
		logrus.Infof("listening on %s", serveAddr)
		if err := app.Listen(serveAddr); err != nil {
			logrus.Fatalf("Server failed: %v", err)
		}
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", ":9095", "Listen address")

	rootCmd.AddCommand(serveCmd)
}
