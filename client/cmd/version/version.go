package version

import (
	"fmt"

	"github.com/goto/salt/log"
	"github.com/spf13/cobra"

	"github.com/goto/chrono/client/cmd/internal/logger"
)

// overridden through ldflags at build time
var (
	Version   = "dev"
	BuildDate = ""
)

type versionCommand struct {
	logger log.Logger
}

// NewVersionCommand initializes command to get version
func NewVersionCommand() *cobra.Command {
	v := &versionCommand{
		logger: logger.NewClientLogger(),
	}

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print the client version information",
		RunE:  v.RunE,
	}

	return cmd
}

func (v *versionCommand) RunE(_ *cobra.Command, _ []string) error {
	v.logger.Info(fmt.Sprintf("chrono %s", Version))
	if BuildDate != "" {
		v.logger.Info(fmt.Sprintf("built on %s", BuildDate))
	}
	return nil
}
