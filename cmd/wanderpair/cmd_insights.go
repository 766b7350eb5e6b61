package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/wanderpair/wanderpair/internal/cli"
	"github.com/wanderpair/wanderpair/internal/services"
)

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Show stats, highlights, achievements and prompts",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		workspace, err := openWorkspace()
		if err != nil {
			return err
		}
		view := workspace.View()

		if session := workspace.Session(); session != nil {
			fmt.Printf("✈  %s ❤ %s\n", session.MyUsername, session.PartnerUsername)
		} else {
			fmt.Println("✈  Anonymous map (log in to share it)")
		}
		fmt.Println(strings.Repeat("─", 46))

		stats := view.Stats
		fmt.Printf("Visited %d/%d (%d%%) · Wishlist %d · Planned %d\n",
			stats.VisitedCount, stats.Total, stats.Progress, stats.WishlistCount, stats.PlannedCount)

		fmt.Printf("\n🌟 %s — %s\n   今日提案：%s\n", view.DailyMood.Title, view.DailyMood.Message, view.DailyMood.Tip)

		if view.HeroHighlight != nil {
			fmt.Printf("\n📍 今日灵感: %s", view.HeroHighlight.Name)
			if view.HeroHighlight.BestTime != "" {
				fmt.Printf(" · 最佳 %s", view.HeroHighlight.BestTime)
			}
			fmt.Println()
		}

		if len(view.SeasonalHighlights) > 0 {
			fmt.Println("\n☀ 当季精选")
			for _, destination := range view.SeasonalHighlights {
				fmt.Printf("   %s（%s）\n", destination.Name, destination.BestTime)
			}
		}

		if len(view.WishlistSpotlights) > 0 {
			fmt.Println("\n🧭 梦想聚焦")
			for _, destination := range view.WishlistSpotlights {
				fmt.Printf("   %s · %s\n", destination.Name, destination.Category)
			}
		}

		if len(view.UpcomingPlans) > 0 {
			fmt.Println("\n📅 下一段旅程")
			for _, plan := range view.UpcomingPlans {
				fmt.Printf("   %s — %s", plan.DestinationName, plan.Title)
				if plan.Date != "" {
					fmt.Printf(" (%s)", plan.Date)
				}
				fmt.Println()
			}
		}

		if len(view.MemoryLane) > 0 {
			fmt.Println("\n📖 回忆胶囊")
			for _, destination := range view.MemoryLane {
				fmt.Printf("   %s: %s\n", destination.Name, destination.Notes)
			}
		}

		fmt.Println("\n🏆 成就墙")
		for _, achievement := range view.Achievements {
			pin := "  "
			if achievement.Pinned {
				pin = "📌"
			}
			fmt.Printf("   %s [%-11s] %s (%d/%d)\n", pin, achievement.Status, achievement.Title, achievement.Current, achievement.Target)
		}

		if len(view.ConnectionPrompts) > 0 {
			fmt.Println("\n💞 心动提案")
			for _, prompt := range view.ConnectionPrompts {
				check := "☐"
				if prompt.Completed {
					check = "☑"
				}
				fmt.Printf("   %s %s: %s\n", check, prompt.ID, prompt.Text)
			}
		}

		if promise, ok := workspace.Promise(); ok {
			fmt.Println("\n🤝 旅程约定")
			if promise.Mantra != "" {
				fmt.Printf("   宣言：%s\n", promise.Mantra)
			}
			if promise.Ritual != "" {
				fmt.Printf("   下一步：%s\n", promise.Ritual)
			}
		}
		return nil
	},
}

var pinCmd = &cobra.Command{
	Use:   "pin <achievement-id>",
	Short: "Pin or unpin an achievement (oldest pin drops past 6)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		workspace, err := openWorkspace()
		if err != nil {
			return err
		}
		workspace.ToggleAchievementPin(args[0])
		fmt.Println("Pin shelf updated.")
		return nil
	},
}

var promptCmd = &cobra.Command{
	Use:   "prompt <prompt-id>",
	Short: "Mark a bonding prompt done (or undo it)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		workspace, err := openWorkspace()
		if err != nil {
			return err
		}
		workspace.ToggleConnectionPrompt(args[0])
		fmt.Println("Prompt progress updated.")
		return nil
	},
}

var promiseCmd = &cobra.Command{
	Use:   "promise",
	Short: "Write or clear your shared travel promise",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		workspace, err := openWorkspace()
		if err != nil {
			return err
		}

		if promiseClear {
			workspace.RemovePromise()
			fmt.Println("Promise cleared.")
			return nil
		}

		mantra, err := cli.PromptLine("我们的旅程宣言: ")
		if err != nil {
			return err
		}
		ritual, err := cli.PromptLine("下一步想做的事情: ")
		if err != nil {
			return err
		}

		if _, err := workspace.SavePromise(mantra, ritual); err != nil {
			if errors.Is(err, services.ErrPromiseEmpty) {
				return fmt.Errorf("请至少写下一句宣言或一个下一步约定")
			}
			return err
		}
		fmt.Println("Promise saved. 🤝")
		return nil
	},
}

var promiseClear bool

func init() {
	promiseCmd.Flags().BoolVar(&promiseClear, "clear", false, "remove the saved promise")
	rootCmd.AddCommand(dashboardCmd, pinCmd, promptCmd, promiseCmd)
}
