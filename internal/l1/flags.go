package l1

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

var (
	gamesIntFlags = []flagDef[int]{
		{"page", "l1.games.page", 1, "Page of the game list to show (1 is the newest)"},
	}

	gamesBoolFlags = []flagDef[bool]{
		{"interactive", "l1.games.interactive", false, "Page through games interactively"},
	}
)

func init() {
	if err := declareFlags(gamesCmd, gamesIntFlags); err != nil {
		panic(err)
	}
	if err := declareFlags(gamesCmd, gamesBoolFlags); err != nil {
		panic(err)
	}

	CMD.AddCommand(infoCmd)
	CMD.AddCommand(gamesCmd)
	CMD.AddCommand(gameCmd)
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
