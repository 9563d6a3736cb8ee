package cmd

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/jmoreau/formadvisor/internal/catalog"
	"github.com/jmoreau/formadvisor/internal/logger"
	"github.com/jmoreau/formadvisor/internal/matching"
)

var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Recommend a course for a profile without starting the server",
	Run: func(cmd *cobra.Command, _ []string) {
		recommend(cmd)
	},
}

func init() {
	rootCmd.AddCommand(recommendCmd)

	recommendCmd.Flags().StringP("objective", "o", "", "the user's goal, e.g. 'Devenir Data Analyst'")
	recommendCmd.Flags().StringP("knowledge", "k", "", "comma-separated known skills, e.g. 'python, sql'")
	recommendCmd.Flags().StringP("level", "l", "", "current proficiency level")
	recommendCmd.Flags().String("situation", "", "current situation, e.g. 'étudiant'")
	recommendCmd.Flags().String("expectations", "", "comma-separated additional goals")
	recommendCmd.Flags().String("strategy", "", "matching strategy override")
}

// recommend runs a one-shot recommendation. Profile fields not given as
// flags are asked interactively.
func recommend(cmd *cobra.Command) {
	logger, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	profile := &matching.Profile{
		Objective:    flagOrPrompt(cmd, "objective", "Votre objectif", logger),
		Knowledge:    flagOrPrompt(cmd, "knowledge", "Vos compétences (séparées par des virgules)", logger),
		Level:        cmd.Flag("level").Value.String(),
		Situation:    cmd.Flag("situation").Value.String(),
		Expectations: cmd.Flag("expectations").Value.String(),
	}

	matchingCfg := config.matchingConfig()
	if override := cmd.Flag("strategy").Value.String(); override != "" {
		matchingCfg.Strategy = override
	}

	strategy, err := matching.New(matchingCfg, logger)
	if err != nil {
		logger.Fatal("building matching strategy", zap.Error(err))
	}

	courses := catalog.Load(config.ContentDir, logger)

	result := strategy.Recommend(courses, profile)

	output := map[string]any{
		"type":       result.Type,
		"message":    result.Message,
		"best_score": result.BestScore,
	}
	if result.Matched() {
		items := make([]map[string]any, 0, len(result.Items))
		for _, item := range result.Items {
			items = append(items, map[string]any{
				"titre": item.Course.Title,
				"score": item.Score,
				"lien":  item.Course.Link,
			})
		}
		output["formations"] = items
	}

	pretty, _ := json.MarshalIndent(output, "", "  ")
	fmt.Println(string(pretty))
}

// flagOrPrompt returns the flag value, falling back to an interactive
// prompt when the flag was left empty.
func flagOrPrompt(cmd *cobra.Command, name, label string, logger *zap.Logger) string {
	if value := cmd.Flag(name).Value.String(); value != "" {
		return value
	}

	prompt := promptui.Prompt{Label: label}
	value, err := prompt.Run()
	if err != nil {
		logger.Fatal("reading profile input", zap.String("field", name), zap.Error(err))
	}
	return value
}
