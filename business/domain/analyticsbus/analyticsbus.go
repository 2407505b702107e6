// Package analyticsbus provides the aggregated metrics of a business.
package analyticsbus

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jcpaschoal/admindashboard/foundation/otel"
	"golang.org/x/sync/errgroup"
)

// Window bounds, in days, for the revenue series and the type histogram.
const (
	DefaultDays = 30
	MaxDays     = 3650
)

// Storer interface declares the queries a summary is built from. Every
// method is scoped to a single business.
type Storer interface {
	CustomerCount(ctx context.Context, businessID uuid.UUID) (int, error)
	RevenueTotal(ctx context.Context, businessID uuid.UUID) (float64, error)
	ActivityCount(ctx context.Context, businessID uuid.UUID) (int, error)
	TeamCount(ctx context.Context, businessID uuid.UUID) (int, error)
	RevenueOverTime(ctx context.Context, businessID uuid.UUID, days int) ([]DailyRevenue, error)
	ActivityByType(ctx context.Context, businessID uuid.UUID, days int) ([]TypeCount, error)
}

// Core manages the set of APIs for analytics access.
type Core struct {
	storer Storer
}

// NewCore constructs an analytics core API for use.
func NewCore(storer Storer) *Core {
	return &Core{
		storer: storer,
	}
}

// Summary runs the metric queries concurrently and assembles the result. The
// activity count always covers the trailing month; days only bounds the
// revenue series and the type histogram. The first failing query fails the
// summary.
func (c *Core) Summary(ctx context.Context, businessID uuid.UUID, days int) (Summary, error) {
	ctx, span := otel.AddSpan(ctx, "business.analyticsbus.summary")
	defer span.End()

	var s Summary

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() (err error) {
		s.CustomerCount, err = c.storer.CustomerCount(ctx, businessID)
		return err
	})

	g.Go(func() (err error) {
		s.RevenueTotal, err = c.storer.RevenueTotal(ctx, businessID)
		return err
	})

	g.Go(func() (err error) {
		s.ActivityCount, err = c.storer.ActivityCount(ctx, businessID)
		return err
	})

	g.Go(func() (err error) {
		s.TeamCount, err = c.storer.TeamCount(ctx, businessID)
		return err
	})

	g.Go(func() (err error) {
		s.RevenueOverTime, err = c.storer.RevenueOverTime(ctx, businessID, days)
		return err
	})

	g.Go(func() (err error) {
		s.ActivityByType, err = c.storer.ActivityByType(ctx, businessID, days)
		return err
	})

	if err := g.Wait(); err != nil {
		return Summary{}, fmt.Errorf("summary: businessID[%s]: %w", businessID, err)
	}

	if s.RevenueOverTime == nil {
		s.RevenueOverTime = []DailyRevenue{}
	}
	if s.ActivityByType == nil {
		s.ActivityByType = []TypeCount{}
	}

	return s, nil
}
