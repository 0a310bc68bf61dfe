package cli

import (
	"context"
	"fmt"
)

// Run выполняет команду с аргументами args (без имени команды)
func (c *Cli) Run(ctx context.Context, command string, args []string) error {
	switch command {
	case "login":
		return c.runLogin(ctx, args)
	case "logout":
		return c.runLogout(ctx)
	case "status":
		return c.runStatus(ctx)
	case "list":
		return c.runList(ctx, args)
	case "get":
		return c.runGet(ctx, args)
	case "add":
		return c.runAdd(ctx, args)
	case "edit":
		return c.runEdit(ctx, args)
	case "delete":
		return c.runDelete(ctx, args)
	case "categories":
		return c.runCategories(ctx)
	case "category-add":
		return c.runCategoryAdd(ctx, args)
	case "category-delete":
		return c.runCategoryDelete(ctx, args)
	case "upload":
		return c.runUpload(ctx, args)
	case "scan":
		return c.runScan(ctx, args)
	case "help":
		PrintUsage(c.io)
		return nil
	default:
		return fmt.Errorf("%w: unknown command %q", ErrUsage, command)
	}
}
