package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Fetch current CDT traffic, compare to the threshold, and notify",
	RunE:  runCheck,
}

var failOnFetchError bool

func init() {
	rootCmd.AddCommand(checkCmd)
	for _, cmd := range []*cobra.Command{rootCmd, checkCmd} {
		cmd.Flags().BoolVar(&failOnFetchError, "fail-on-fetch-error", false,
			"exit non-zero when traffic could not be fetched instead of treating it as zero")
	}
}

func runCheck(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger := newLogger(cfg)
	m, err := initMonitor(cfg, logger)
	if err != nil {
		return err
	}

	res := m.Run(cmd.Context())

	// Reference behavior is exit 0 no matter what went wrong inside the run;
	// the flag opts into distinguishing "could not determine usage".
	if failOnFetchError && res.FetchErr != nil {
		return fmt.Errorf("fetch traffic: %w", res.FetchErr)
	}
	return nil
}
