package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"cablequote/internal/domain/entities"
	"cablequote/internal/usecase/interfaces"
	logx "cablequote/pkg/logger"
)

var ErrExportFailed = errors.New("export failed")

// ExportResult is the outcome of one asynchronous export.
type ExportResult struct {
	Document entities.Document
	Err      error
}

// IExportUseCase renders documents in the background. Each call returns a
// channel that yields exactly one result and is then closed.
type IExportUseCase interface {
	ExportQuote(ctx context.Context, s entities.Session, format entities.DocumentFormat) <-chan ExportResult
	ExportProducts(ctx context.Context, s entities.Session, format entities.DocumentFormat, f ProductFilter) <-chan ExportResult
	ExportCustomers(ctx context.Context, s entities.Session, format entities.DocumentFormat, f CustomerFilter) <-chan ExportResult
	ExportDashboard(ctx context.Context, s entities.Session, format entities.DocumentFormat) <-chan ExportResult
}

type ExportUseCase struct {
	renderers map[entities.DocumentFormat]interfaces.IDocumentRenderer
	sink      interfaces.IDocumentSink
	quotes    IQuoteUseCase
	catalog   ICatalogUseCase
	dashboard IDashboardUseCase
	now       func() time.Time
}

var _ IExportUseCase = (*ExportUseCase)(nil)

func NewExportUseCase(
	sink interfaces.IDocumentSink,
	quotes IQuoteUseCase,
	catalog ICatalogUseCase,
	dashboard IDashboardUseCase,
	renderers ...interfaces.IDocumentRenderer,
) *ExportUseCase {
	byFormat := make(map[entities.DocumentFormat]interfaces.IDocumentRenderer, len(renderers))
	for _, r := range renderers {
		byFormat[r.Format()] = r
	}
	return &ExportUseCase{
		renderers: byFormat,
		sink:      sink,
		quotes:    quotes,
		catalog:   catalog,
		dashboard: dashboard,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// ExportQuote renders the session's finalized quote. The draft is not
// touched, so a failed export can simply be retried.
func (u *ExportUseCase) ExportQuote(ctx context.Context, s entities.Session, format entities.DocumentFormat) <-chan ExportResult {
	return u.run(ctx, format, func(r interfaces.IDocumentRenderer) (string, []byte, error) {
		q, err := u.quotes.Finalize(ctx, s.Token)
		if err != nil {
			return "", nil, err
		}
		data, err := r.RenderQuote(q)
		return "Quote_" + q.QuoteNumber, data, err
	})
}

func (u *ExportUseCase) ExportProducts(ctx context.Context, s entities.Session, format entities.DocumentFormat, f ProductFilter) <-chan ExportResult {
	return u.run(ctx, format, func(r interfaces.IDocumentRenderer) (string, []byte, error) {
		products, err := u.catalog.ListProducts(ctx, f)
		if err != nil {
			return "", nil, err
		}
		data, err := r.RenderProducts(products, u.meta(s, describeFilter(f.Search, "category", f.Category)))
		return "Product_Catalog", data, err
	})
}

func (u *ExportUseCase) ExportCustomers(ctx context.Context, s entities.Session, format entities.DocumentFormat, f CustomerFilter) <-chan ExportResult {
	return u.run(ctx, format, func(r interfaces.IDocumentRenderer) (string, []byte, error) {
		customers, err := u.catalog.ListCustomers(ctx, f)
		if err != nil {
			return "", nil, err
		}
		data, err := r.RenderCustomers(customers, u.meta(s, describeFilter(f.Search, "tier", f.Tier)))
		return "Customer_Directory", data, err
	})
}

func (u *ExportUseCase) ExportDashboard(ctx context.Context, s entities.Session, format entities.DocumentFormat) <-chan ExportResult {
	return u.run(ctx, format, func(r interfaces.IDocumentRenderer) (string, []byte, error) {
		report, err := u.dashboard.Report(ctx, s.Role)
		if err != nil {
			return "", nil, err
		}
		data, err := r.RenderDashboard(report)
		return "Dashboard_Report", data, err
	})
}

// errRender marks failures raised by a renderer, as opposed to the domain
// errors returned while loading the data to render.
type errRender struct{ err error }

func (e errRender) Error() string { return e.err.Error() }
func (e errRender) Unwrap() error { return e.err }

func (u *ExportUseCase) run(
	ctx context.Context,
	format entities.DocumentFormat,
	build func(r interfaces.IDocumentRenderer) (string, []byte, error),
) <-chan ExportResult {
	out := make(chan ExportResult, 1)
	go func() {
		defer close(out)
		defer func() {
			if r := recover(); r != nil {
				logx.Error().Interface("panic", r).Str("format", string(format)).Msg("[export][usecase] render panicked")
				out <- ExportResult{Err: fmt.Errorf("%w: %v", ErrExportFailed, r)}
			}
		}()
		doc, err := u.export(ctx, format, build)
		out <- ExportResult{Document: doc, Err: err}
	}()
	return out
}

func (u *ExportUseCase) export(
	ctx context.Context,
	format entities.DocumentFormat,
	build func(r interfaces.IDocumentRenderer) (string, []byte, error),
) (entities.Document, error) {
	r, ok := u.renderers[format]
	if !ok {
		return entities.Document{}, entities.ErrUnsupportedFormat
	}

	base, data, err := build(renderGuard{r})
	if err != nil {
		var re errRender
		if errors.As(err, &re) {
			logx.Error().Err(re.err).Str("format", string(format)).Msg("[export][usecase] render failed")
			return entities.Document{}, fmt.Errorf("%w: %w", ErrExportFailed, re.err)
		}
		return entities.Document{}, err
	}
	if err := ctx.Err(); err != nil {
		return entities.Document{}, err
	}

	name := fmt.Sprintf("%s_%s.%s", base, u.now().Format("20060102-150405"), format)
	location, err := u.sink.Save(ctx, name, data)
	if err != nil {
		logx.Error().Err(err).Str("name", name).Msg("[export][usecase] save failed")
		return entities.Document{}, fmt.Errorf("%w: %w", ErrExportFailed, err)
	}

	logx.Info().Str("name", name).Str("format", string(format)).Int("bytes", len(data)).Msg("[export][usecase] document exported")
	return entities.Document{Name: name, Format: format, Data: data, Location: location}, nil
}

func (u *ExportUseCase) meta(s entities.Session, filter string) entities.DocumentMeta {
	return entities.DocumentMeta{
		PreparedBy:  s.Email,
		Role:        s.Role,
		Filter:      filter,
		GeneratedAt: u.now(),
	}
}

func describeFilter(search, label, value string) string {
	var parts []string
	if search != "" {
		parts = append(parts, fmt.Sprintf("search %q", search))
	}
	if value != "" && value != filterAll {
		parts = append(parts, label+" "+value)
	}
	if len(parts) == 0 {
		return ""
	}
	if len(parts) == 1 {
		return parts[0]
	}
	return parts[0] + ", " + parts[1]
}

// renderGuard tags renderer errors so export can tell them apart.
type renderGuard struct {
	r interfaces.IDocumentRenderer
}

func (g renderGuard) Format() entities.DocumentFormat { return g.r.Format() }

func (g renderGuard) RenderQuote(q entities.PricedQuote) ([]byte, error) {
	return tag(g.r.RenderQuote(q))
}

func (g renderGuard) RenderCustomers(c []entities.Customer, m entities.DocumentMeta) ([]byte, error) {
	return tag(g.r.RenderCustomers(c, m))
}

func (g renderGuard) RenderProducts(p []entities.Product, m entities.DocumentMeta) ([]byte, error) {
	return tag(g.r.RenderProducts(p, m))
}

func (g renderGuard) RenderDashboard(d entities.DashboardReport) ([]byte, error) {
	return tag(g.r.RenderDashboard(d))
}

func tag(data []byte, err error) ([]byte, error) {
	if err != nil {
		return nil, errRender{err}
	}
	return data, nil
}
