package cmd

import (
	"github.com/joho/godotenv"
	"github.com/jsphweid/scaledegree/constants"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "scaledegree",
	Short: "Spells scales and chords from scale-degree formulas",
	Long: `Spells scales, open chord voicings and II-V-I progressions from
scale-degree formulas such as "1 2 b3 4 5 b6 b7 8", with the letter
names a musician would write.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if err := godotenv.Load(); err != nil {
			logrus.Debug("no .env file found, using environment variables")
		}
		level, err := logrus.ParseLevel(constants.GetLogLevel())
		if err != nil {
			logrus.WithField("level", constants.GetLogLevel()).Warn("unknown log level, using info")
			level = logrus.InfoLevel
		}
		logrus.SetLevel(level)
	},
	SilenceUsage: true,
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}
