package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/wanderpair/wanderpair/internal/models"
	"github.com/wanderpair/wanderpair/internal/services"
)

var listFilter struct {
	category     string
	search       string
	wishlistOnly bool
	visitedOnly  bool
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List destinations on the map",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		workspace, err := openWorkspace()
		if err != nil {
			return err
		}

		destinations := services.FilterDestinations(workspace.Destinations(), services.DestinationFilter{
			Category:     listFilter.category,
			SearchTerm:   listFilter.search,
			WishlistOnly: listFilter.wishlistOnly,
			VisitedOnly:  listFilter.visitedOnly,
		})
		if len(destinations) == 0 {
			fmt.Println("No destinations match.")
			return nil
		}

		for _, destination := range destinations {
			marker := " "
			if destination.Visited {
				marker = "✓"
			}
			wish := " "
			if destination.Wishlist {
				wish = "♥"
			}
			fmt.Printf("%3d %s%s %s %s · %s", destination.ID, marker, wish, services.CategoryEmoji(destination.Category), destination.Name, destination.Country)
			if len(destination.Plans) > 0 {
				fmt.Printf(" (%d plans)", len(destination.Plans))
			}
			fmt.Println()
		}
		return nil
	},
}

var addFlags struct {
	country  string
	category string
	lat      float64
	lng      float64
	bestTime string
	notes    string
}

var addCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Add a destination of your own",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		workspace, err := openWorkspace()
		if err != nil {
			return err
		}

		added := workspace.AddDestination(models.Destination{
			Name:        args[0],
			Country:     addFlags.country,
			Category:    addFlags.category,
			Coordinates: [2]float64{addFlags.lat, addFlags.lng},
			BestTime:    addFlags.bestTime,
			Notes:       addFlags.notes,
		})
		fmt.Printf("Added #%d %s\n", added.ID, added.Name)
		return nil
	},
}

var markFlags struct {
	visited  bool
	wishlist bool
	notes    string
}

var markCmd = &cobra.Command{
	Use:   "mark <destination-id>",
	Short: "Update a destination's visited/wishlist flags or notes",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("destination id must be a number: %w", err)
		}

		workspace, err := openWorkspace()
		if err != nil {
			return err
		}

		destination, found := findDestination(workspace.Destinations(), id)
		if !found {
			return fmt.Errorf("destination %d not found", id)
		}

		if cmd.Flags().Changed("visited") {
			destination.Visited = markFlags.visited
		}
		if cmd.Flags().Changed("wishlist") {
			destination.Wishlist = markFlags.wishlist
		}
		if cmd.Flags().Changed("notes") {
			destination.Notes = markFlags.notes
		}

		workspace.UpdateDestination(destination)
		fmt.Printf("Updated #%d %s\n", destination.ID, destination.Name)
		return nil
	},
}

var planFlags struct {
	date     string
	duration string
	budget   string
	notes    string
}

var planCmd = &cobra.Command{
	Use:   "plan <destination-id> <title>",
	Short: "Attach a trip plan to a destination",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("destination id must be a number: %w", err)
		}

		workspace, err := openWorkspace()
		if err != nil {
			return err
		}

		destination, found := findDestination(workspace.Destinations(), id)
		if !found {
			return fmt.Errorf("destination %d not found", id)
		}

		nextPlanID := 1
		for _, plan := range destination.Plans {
			if plan.ID >= nextPlanID {
				nextPlanID = plan.ID + 1
			}
		}
		destination.Plans = append(destination.Plans, models.Plan{
			ID:       nextPlanID,
			Title:    args[1],
			Date:     planFlags.date,
			Duration: planFlags.duration,
			Budget:   planFlags.budget,
			Notes:    planFlags.notes,
		})

		workspace.UpdateDestination(destination)
		fmt.Printf("Planned %q for #%d %s\n", args[1], destination.ID, destination.Name)
		return nil
	},
}

func findDestination(destinations []models.Destination, id int) (models.Destination, bool) {
	for _, destination := range destinations {
		if destination.ID == id {
			return destination, true
		}
	}
	return models.Destination{}, false
}

func init() {
	listCmd.Flags().StringVar(&listFilter.category, "category", "", "filter by category")
	listCmd.Flags().StringVar(&listFilter.search, "search", "", "search name or country")
	listCmd.Flags().BoolVar(&listFilter.wishlistOnly, "wishlist", false, "only wishlist entries")
	listCmd.Flags().BoolVar(&listFilter.visitedOnly, "visited", false, "only visited places")

	addCmd.Flags().StringVar(&addFlags.country, "country", "", "country name")
	addCmd.Flags().StringVar(&addFlags.category, "category", "", "destination category")
	addCmd.Flags().Float64Var(&addFlags.lat, "lat", 0, "latitude")
	addCmd.Flags().Float64Var(&addFlags.lng, "lng", 0, "longitude")
	addCmd.Flags().StringVar(&addFlags.bestTime, "best-time", "", "best months to go, e.g. 4-10月")
	addCmd.Flags().StringVar(&addFlags.notes, "notes", "", "notes")

	markCmd.Flags().BoolVar(&markFlags.visited, "visited", false, "mark as visited")
	markCmd.Flags().BoolVar(&markFlags.wishlist, "wishlist", false, "mark as wishlist")
	markCmd.Flags().StringVar(&markFlags.notes, "notes", "", "replace notes")

	planCmd.Flags().StringVar(&planFlags.date, "date", "", "departure date, e.g. 2026-10-01")
	planCmd.Flags().StringVar(&planFlags.duration, "duration", "", "trip duration")
	planCmd.Flags().StringVar(&planFlags.budget, "budget", "", "budget")
	planCmd.Flags().StringVar(&planFlags.notes, "notes", "", "plan notes")

	rootCmd.AddCommand(listCmd, addCmd, markCmd, planCmd)
}
