package cli

import (
	"context"
	"fmt"
)

type TagsCmd struct{}

func (c *TagsCmd) Run(ctx *Context) error {
	if err := ctx.openCache(); err != nil {
		return err
	}
	defer ctx.Cache.Close()

	tags, err := ctx.Cache.SavedTags(context.Background())
	if err != nil {
		return err
	}
	if len(tags) == 0 {
		fmt.Println("No saved tags yet")
		return nil
	}

	fmt.Println("Saved tags:")
	for _, tag := range tags {
		fmt.Printf("  %s\n", tag)
	}
	return nil
}
