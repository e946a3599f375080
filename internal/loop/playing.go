package loop

import (
	"time"

	"github.com/tomz197/nightmare/internal/object"
)

// Step advances the world by one frame. The order is fixed: spawn enemies,
// fire and move the player, move bullets, move enemies (they may fire),
// resolve collisions, then expire invulnerability.
// A finished world does not change.
func (w *World) Step(in object.Input, delta time.Duration) error {
	if w.Over {
		return nil
	}

	w.Now += delta
	ctx := w.UpdateContext(in, delta)

	if _, err := w.Spawner.Update(ctx); err != nil {
		return err
	}
	if _, err := w.Player.Update(ctx); err != nil {
		return err
	}

	var err error
	if w.Bullets, err = updateObjects(w.Bullets, ctx); err != nil {
		return err
	}
	if w.Enemies, err = updateObjects(w.Enemies, ctx); err != nil {
		return err
	}

	w.checkCollisions()
	w.Player.ExpireInvulnerability(w.Now)

	if w.Effects, err = updateObjects(w.Effects, ctx); err != nil {
		return err
	}
	return nil
}

// updateObjects updates all objects and removes any that request removal.
func updateObjects[T object.Object](objects []T, ctx object.UpdateContext) ([]T, error) {
	kept := objects[:0] // reuse backing array
	for _, obj := range objects {
		remove, err := obj.Update(ctx)
		if err != nil {
			return objects, err
		}
		if remove {
			object.ReleaseObject(obj)
			continue
		}
		kept = append(kept, obj)
	}
	clear(objects[len(kept):])
	return kept, nil
}

// Draw paints the world back to front: background, enemies, bullets, effects, player.
func (w *World) Draw(ctx object.DrawContext) error {
	if err := w.Background.Draw(ctx); err != nil {
		return err
	}
	for _, e := range w.Enemies {
		if err := e.Draw(ctx); err != nil {
			return err
		}
	}
	for _, b := range w.Bullets {
		if err := b.Draw(ctx); err != nil {
			return err
		}
	}
	for _, obj := range w.Effects {
		if err := obj.Draw(ctx); err != nil {
			return err
		}
	}
	return w.Player.Draw(ctx)
}
