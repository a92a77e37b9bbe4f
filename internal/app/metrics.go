package app

import (
	"errors"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/sdk/instrumentation"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
)

const (
	metricBookingsCreated   = "bookings.created"
	metricSeatsBooked       = "bookings.seats"
	metricBookingPrice      = "bookings.price"
	metricScheduleConflicts = "screenings.conflicts"
)

type metrics struct {
	bookingsCreated   metric.Int64Counter
	seatsBooked       metric.Int64Counter
	bookingPrice      metric.Int64Histogram
	scheduleConflicts metric.Int64Counter
}

// newMetrics creates the booking instruments on meter. With the global meter
// they are no-ops until InitTelemetry installs an exporter.
func newMetrics(meter metric.Meter) (*metrics, error) {
	bookingsCreated, err1 := meter.Int64Counter(metricBookingsCreated,
		metric.WithDescription("Number of bookings made"))
	seatsBooked, err2 := meter.Int64Counter(metricSeatsBooked,
		metric.WithDescription("Number of seats booked"),
		metric.WithUnit("{seat}"))
	bookingPrice, err3 := meter.Int64Histogram(metricBookingPrice,
		metric.WithDescription("Total price of a booking"),
		metric.WithUnit("HUF"))
	scheduleConflicts, err4 := meter.Int64Counter(metricScheduleConflicts,
		metric.WithDescription("Number of screenings rejected for a schedule conflict"))

	err := errors.Join(err1, err2, err3, err4)
	if err != nil {
		return nil, err
	}

	return &metrics{
		bookingsCreated:   bookingsCreated,
		seatsBooked:       seatsBooked,
		bookingPrice:      bookingPrice,
		scheduleConflicts: scheduleConflicts,
	}, nil
}

// bookingPriceBoundaries cover one to ten seats around the default base price.
var bookingPriceBoundaries = []float64{1500, 3000, 4500, 6000, 9000, 15000, 30000}

// metricViews keeps the attribute sets of our instruments small: bookings are
// broken down by movie and room, conflicts by reason only.
func metricViews() []sdkmetric.View {
	scope := instrumentation.Scope{Name: serviceName}

	return []sdkmetric.View{
		sdkmetric.NewView(
			sdkmetric.Instrument{Name: metricBookingsCreated, Scope: scope},
			sdkmetric.Stream{AttributeFilter: attribute.NewAllowKeysFilter("movie", "room")},
		),
		sdkmetric.NewView(
			sdkmetric.Instrument{Name: metricSeatsBooked, Scope: scope},
			sdkmetric.Stream{AttributeFilter: attribute.NewAllowKeysFilter("movie", "room")},
		),
		sdkmetric.NewView(
			sdkmetric.Instrument{Name: metricBookingPrice, Scope: scope},
			sdkmetric.Stream{
				AttributeFilter: attribute.NewAllowKeysFilter("room"),
				Aggregation:     sdkmetric.AggregationExplicitBucketHistogram{Boundaries: bookingPriceBoundaries},
			},
		),
		sdkmetric.NewView(
			sdkmetric.Instrument{Name: metricScheduleConflicts, Scope: scope},
			sdkmetric.Stream{AttributeFilter: attribute.NewAllowKeysFilter("reason")},
		),
	}
}
