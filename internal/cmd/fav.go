package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/dedene/casekit/internal/outfmt"
	"github.com/dedene/casekit/internal/store"
	"github.com/dedene/casekit/internal/transform"
	"github.com/dedene/casekit/internal/ui"
)

// FavCmd groups favorites subcommands.
type FavCmd struct {
	List   FavListCmd   `cmd:"" default:"1" help:"List favorites"`
	Add    FavAddCmd    `cmd:"" help:"Add a favorite"`
	Remove FavRemoveCmd `cmd:"" aliases:"rm" help:"Remove a favorite"`
	Toggle FavToggleCmd `cmd:"" help:"Add or remove a favorite"`
}

// favChange is the JSON shape of a favorites mutation.
type favChange struct {
	ID       string `json:"id"`
	Favorite bool   `json:"favorite"`
}

// updateFavorite resolves id, applies fn to the set and saves it.
func updateFavorite(ctx context.Context, id string, fn func(f *store.Favorites, id string) bool) error {
	d, err := resolveID(engineFromContext(ctx).Registry(), id)
	if err != nil {
		return err
	}

	favs, err := loadFavorites()
	if err != nil {
		return err
	}

	changed := fn(favs, d.ID)
	if changed {
		if err := favs.Save(); err != nil {
			return fmt.Errorf("saving favorites: %w", err)
		}
	}

	res := favChange{ID: d.ID, Favorite: favs.Has(d.ID)}

	return outfmt.Emit(ctx, os.Stdout, res, func() error {
		switch {
		case !changed && res.Favorite:
			fmt.Fprintf(os.Stderr, "%s is already a favorite\n", d.ID)
		case !changed:
			fmt.Fprintf(os.Stderr, "%s is not a favorite\n", d.ID)
		case res.Favorite:
			notef(ctx, "Added %s to favorites", d.ID)
		default:
			notef(ctx, "Removed %s from favorites", d.ID)
		}

		return nil
	})
}

// FavAddCmd adds a favorite.
type FavAddCmd struct {
	ID string `arg:"" help:"Transform ID"`
}

// Run executes fav add.
func (c *FavAddCmd) Run(ctx context.Context) error {
	return updateFavorite(ctx, c.ID, (*store.Favorites).Add)
}

// FavRemoveCmd removes a favorite.
type FavRemoveCmd struct {
	ID string `arg:"" help:"Transform ID"`
}

// Run executes fav remove.
func (c *FavRemoveCmd) Run(ctx context.Context) error {
	return updateFavorite(ctx, c.ID, (*store.Favorites).Remove)
}

// FavToggleCmd flips a favorite.
type FavToggleCmd struct {
	ID string `arg:"" help:"Transform ID"`
}

// Run executes fav toggle.
func (c *FavToggleCmd) Run(ctx context.Context) error {
	return updateFavorite(ctx, c.ID, func(f *store.Favorites, id string) bool {
		f.Toggle(id)

		return true
	})
}

// FavListCmd lists favorites.
type FavListCmd struct{}

// Run executes fav list.
func (c *FavListCmd) Run(ctx context.Context) error {
	favs, err := loadFavorites()
	if err != nil {
		return err
	}

	descs := describeIDs(engineFromContext(ctx).Registry(), favs.IDs())

	return outfmt.Emit(ctx, os.Stdout, descs, func() error {
		if len(descs) == 0 {
			hintf(ctx, "No favorites yet. Add one with 'casekit fav add ID'.")

			return nil
		}

		rows := make([][]string, 0, len(descs))
		for _, d := range descs {
			rows = append(rows, []string{d.ID, d.Name, string(d.Category)})
		}

		fmt.Fprint(os.Stdout, ui.RenderTable([]string{"ID", "Name", "Category"}, rows, colorEnabled(ctx)))
		fmt.Fprintln(os.Stdout)

		return nil
	})
}

// describeIDs looks up each id, skipping any that are no longer registered.
func describeIDs(reg *transform.Registry, ids []string) []transform.Descriptor {
	out := make([]transform.Descriptor, 0, len(ids))
	for _, id := range ids {
		if d, ok := reg.Find(id); ok {
			out = append(out, d)
		}
	}

	return out
}
