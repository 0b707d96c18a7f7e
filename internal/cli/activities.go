package cli

import (
	"context"
	"fmt"
)

type ActivitiesCmd struct{}

func (c *ActivitiesCmd) Run(ctx *Context) error {
	if err := ctx.openCache(); err != nil {
		return err
	}
	defer ctx.Cache.Close()

	activities, err := ctx.Cache.RecentActivities(context.Background())
	if err != nil {
		return err
	}
	if len(activities) == 0 {
		fmt.Println("No recent activities yet")
		return nil
	}

	// Most recent first, matching how they are suggested in the form.
	fmt.Println("Recent activities:")
	for i, activity := range activities {
		fmt.Printf("  %d. %s\n", i+1, activity)
	}
	return nil
}
