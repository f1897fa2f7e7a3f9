package store

import (
	"context"
	"fmt"
	"time"

	"github.com/studyplanhq/studyplan/ent"
	"github.com/studyplanhq/studyplan/ent/busyblock"
	"github.com/studyplanhq/studyplan/internal/timeslot"
)

type busyRepo struct {
	client *ent.Client
}

func (r *busyRepo) Add(ctx context.Context, b BusyBlock) error {
	if err := b.Interval.Validate(); err != nil {
		return err
	}
	_, err := r.client.BusyBlock.Create().
		SetBlockID(b.ID).
		SetLabel(b.Label).
		SetStartAt(b.Interval.Start).
		SetEndAt(b.Interval.End).
		SetSource(b.Source).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("create busy block: %w", err)
	}
	return nil
}

func (r *busyRepo) Remove(ctx context.Context, id string) error {
	n, err := r.client.BusyBlock.Delete().
		Where(busyblock.BlockID(id)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("delete busy block: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("delete busy block: %s not found", id)
	}
	return nil
}

func (r *busyRepo) Between(ctx context.Context, from, to time.Time) ([]BusyBlock, error) {
	rows, err := r.client.BusyBlock.Query().
		Where(
			busyblock.EndAtGT(from),
			busyblock.StartAtLT(to),
		).
		Order(ent.Asc(busyblock.FieldStartAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list busy blocks: %w", err)
	}
	out := make([]BusyBlock, 0, len(rows))
	for _, row := range rows {
		out = append(out, BusyBlock{
			ID:    row.BlockID,
			Label: row.Label,
			Interval: timeslot.BusyInterval{
				Start: row.StartAt,
				End:   row.EndAt,
			},
			Source: row.Source,
		})
	}
	return out, nil
}
