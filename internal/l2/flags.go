package l2

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

type (
	flagType interface {
		string | int | bool
	}

	flagDef[T flagType] struct {
		name         string
		viperKey     string
		defaultValue T
		description  string
	}
)

var withdrawalsIntFlags = []flagDef[int]{
	{"limit", "l2.withdrawals.limit", 20, "Maximum number of withdrawals to show"},
	{"from-block", "l2.withdrawals.from-block", 0, "First L2 block to search (0 searches the most recent blocks)"},
}

func init() {
	if err := declareFlags(withdrawalsCmd, withdrawalsIntFlags); err != nil {
		panic(err)
	}

	CMD.AddCommand(infoCmd)
	CMD.AddCommand(withdrawalsCmd)
}

// declareFlags declares multiple flags on cmd and binds them to viper configuration keys.
func declareFlags[T flagType](cmd *cobra.Command, flags []flagDef[T]) error {
	for _, flag := range flags {
		if err := declareFlag(cmd, flag.name, flag.viperKey, flag.defaultValue, flag.description); err != nil {
			return err
		}
	}
	return nil
}

// declareFlag declares a single flag and binds it to a viper configuration key.
func declareFlag[T flagType](cmd *cobra.Command, flagName, viperKey string, defaultValue T, description string) error {
	var zero T
	switch any(zero).(type) {
	case string:
		cmd.Flags().String(flagName, any(defaultValue).(string), description)
	case int:
		cmd.Flags().Int(flagName, any(defaultValue).(int), description)
	case bool:
		cmd.Flags().Bool(flagName, any(defaultValue).(bool), description)
	}
	return viper.BindPFlag(viperKey, cmd.Flags().Lookup(flagName))
}
