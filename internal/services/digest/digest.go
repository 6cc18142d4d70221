// Package digest runs one notification job: fetch both forecasts, compose the
// report and hand it to the notifier.
package digest

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"aqi-notifier/config"
	"aqi-notifier/internal/models"
	"aqi-notifier/internal/repositories"
	"aqi-notifier/internal/services/eaqi"
	"aqi-notifier/internal/services/report"
	"aqi-notifier/pkg/logger"
)

type Notifier interface {
	Name() string
	Validate() error
	Send(ctx context.Context, text string) error
}

// Result is the outcome of a successful run.
type Result struct {
	RunID   string
	Message string
	DryRun  bool
	Level   *eaqi.Level
}

// DigestService represents the notification job.
type DigestService struct {
	cfg      *config.Config
	weather  repositories.WeatherRepository
	air      repositories.AirQualityRepository
	notifier Notifier
	l        *logger.Logger
}

func NewDigestService(
	cfg *config.Config,
	weather repositories.WeatherRepository,
	air repositories.AirQualityRepository,
	notifier Notifier,
	l *logger.Logger,
) *DigestService {
	return &DigestService{
		cfg:      cfg,
		weather:  weather,
		air:      air,
		notifier: notifier,
		l:        l,
	}
}

// Run validates the configuration, fetches both forecasts concurrently, renders the
// report and, unless dryRun is set, delivers it. Nothing is retried here.
func (s *DigestService) Run(ctx context.Context, dryRun bool) (Result, error) {
	result := Result{RunID: uuid.NewString(), DryRun: dryRun}

	loc, err := s.cfg.Location()
	if err != nil {
		return result, errors.WithStack(err)
	}

	if !dryRun {
		if s.notifier == nil {
			return result, errors.WithStack(&models.ConfigError{Message: "no notifier configured"})
		}
		if err := s.notifier.Validate(); err != nil {
			return result, errors.WithStack(err)
		}
	}

	s.l.Info("starting digest run", map[string]any{
		"run_id":   result.RunID,
		"location": loc.Name,
		"params":   loc.RequestParams(),
		"dry_run":  dryRun,
	})

	weather, air, err := s.fetch(ctx, loc)
	if err != nil {
		return result, err
	}

	result.Message = report.Render(weather, &air, loc.Name)
	result.Level = report.Verdict(air)

	composed := map[string]any{
		"run_id":    result.RunID,
		"dangerous": result.Level.IsDangerous(),
		"length":    len(result.Message),
	}
	if result.Level != nil {
		composed["aqi_tier"] = result.Level.Tier.String()
	}
	s.l.Info("digest composed", composed)

	if dryRun {
		return result, nil
	}

	if err := s.notifier.Send(ctx, result.Message); err != nil {
		return result, errors.Wrapf(err, "deliver via %s", s.notifier.Name())
	}

	s.l.Info("digest delivered", map[string]any{
		"run_id":   result.RunID,
		"notifier": s.notifier.Name(),
	})

	return result, nil
}

// fetch runs both forecast requests concurrently. The first failure cancels the other one.
func (s *DigestService) fetch(ctx context.Context, loc models.Location) (models.WeatherSnapshot, models.AirQualitySnapshot, error) {
	var (
		weather models.WeatherSnapshot
		air     models.AirQualitySnapshot
	)

	fetchCtx := ctx
	if s.cfg.FetchTimeout > 0 {
		var cancel context.CancelFunc
		fetchCtx, cancel = context.WithTimeout(ctx, s.cfg.FetchTimeout)
		defer cancel()
	}

	started := time.Now()
	g, gCtx := errgroup.WithContext(fetchCtx)

	g.Go(func() error {
		w, err := s.weather.FetchWeather(gCtx, loc)
		if err != nil {
			return errors.Wrapf(err, "fetch %s", s.weather.Name())
		}
		weather = w
		return nil
	})

	g.Go(func() error {
		a, err := s.air.FetchAirQuality(gCtx, loc)
		if err != nil {
			return errors.Wrapf(err, "fetch %s", s.air.Name())
		}
		air = a
		return nil
	})

	if err := g.Wait(); err != nil {
		if errors.Is(fetchCtx.Err(), context.DeadlineExceeded) && ctx.Err() == nil {
			err = errors.WithStack(models.ErrFetchTimeout)
		}
		s.l.Warning("failed to fetch forecasts", map[string]any{
			"err":     err,
			"elapsed": time.Since(started).String(),
		})
		return weather, air, err
	}

	s.l.Debug("fetched forecasts", map[string]any{
		"date":    weather.Date,
		"elapsed": time.Since(started).String(),
	})

	return weather, air, nil
}
