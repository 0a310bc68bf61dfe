package cli

import (
	"context"
	"fmt"

	"github.com/iudanet/cardkeeper/pkg/api"
)

func (c *Cli) runUpload(ctx context.Context, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("%w: cardkeeper upload <id> <file>", ErrUsage)
	}
	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	if err := c.authorize(ctx); err != nil {
		return err
	}

	resp, err := c.uploadImage(ctx, id, args[1])
	if err != nil {
		return err
	}

	c.io.Printf("✓ Image uploaded: %s (%d bytes)\n", c.imageURL(resp.ImageURL), resp.Size)
	return nil
}

func (c *Cli) uploadImage(ctx context.Context, cardID int64, path string) (*api.UploadResponse, error) {
	f, err := c.openFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	defer func() {
		_ = f.Close()
	}()

	resp, err := c.api.UploadImage(ctx, cardID, path, f)
	if err != nil {
		return nil, fmt.Errorf("failed to upload image: %w", err)
	}
	return resp, nil
}
