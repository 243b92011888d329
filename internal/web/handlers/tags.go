package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/gnuletik/datocms-client-go/internal/metrics"
	"github.com/gnuletik/datocms-client-go/internal/preview"
	"github.com/gnuletik/datocms-client-go/internal/web/middleware"
	"github.com/gnuletik/datocms-client-go/internal/web/response"
	"github.com/gnuletik/datocms-client-go/pkg/entities"
	"github.com/gnuletik/datocms-client-go/pkg/jsonapi"
	"github.com/gnuletik/datocms-client-go/pkg/seo"
)

// TagsResponse is the body of a successful tag build
type TagsResponse struct {
	Tags []seo.Tag `json:"tags"`
}

// Tags builds the head tags of the document in the request body.
//
//	POST /tags?item=<id>&locale=<code>
//	POST /tags?type=<api_key>&index=<n>&locale=<code>
//
// Without item or type the site-wide tags are returned.
func (h *Handlers) Tags(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	h.metrics.RequestsInFlight.Inc()
	defer h.metrics.RequestsInFlight.Dec()

	sel, err := selectorFromQuery(r)
	if err != nil {
		h.fail(w, r, start, err)
		return
	}

	body := http.MaxBytesReader(w, r.Body, h.maxBodySize)
	defer body.Close()

	repo, err := preview.Load(body)
	if err != nil {
		h.fail(w, r, start, err)
		return
	}
	h.metrics.ResourcesIndexed.Observe(float64(repo.Graph().Index().Len()))

	res, err := h.builder.Build(repo, sel, r.URL.Query().Get("locale"))
	if err != nil {
		h.fail(w, r, start, err)
		return
	}

	h.metrics.RecordRules(res.Rules)
	h.metrics.RecordBuild(metrics.OutcomeOK, time.Since(start))
	response.RenderJSON(w, http.StatusOK, TagsResponse{Tags: res.Tags})
}

func selectorFromQuery(r *http.Request) (preview.Selector, error) {
	q := r.URL.Query()
	sel := preview.Selector{
		ItemID:   q.Get("item"),
		ItemType: q.Get("type"),
	}

	if raw := q.Get("index"); raw != "" {
		index, err := strconv.Atoi(raw)
		if err != nil || index < 0 {
			return sel, response.NewHTTPError(http.StatusBadRequest, "index must be a non-negative integer").
				WithParameter("index")
		}
		sel.Index = index
	}
	return sel, nil
}

func (h *Handlers) fail(w http.ResponseWriter, r *http.Request, start time.Time, err error) {
	httpErr, outcome := classify(err)
	h.metrics.RecordBuild(outcome, time.Since(start))

	h.logger.Debug("tag build failed",
		zap.String("request_id", middleware.GetRequestID(r.Context())),
		zap.Int("status", httpErr.StatusCode),
		zap.Error(err),
	)
	httpErr.Render(w)
}

// classify maps build errors to responses and metric outcomes
func classify(err error) (*response.HTTPError, string) {
	var (
		httpErr  *response.HTTPError
		tooLarge *http.MaxBytesError
	)

	switch {
	case errors.As(err, &httpErr):
		return httpErr, metrics.OutcomeBadDocument
	case errors.As(err, &tooLarge):
		return response.NewHTTPError(http.StatusRequestEntityTooLarge, "document too large").Wrap(err),
			metrics.OutcomeBadDocument
	case errors.Is(err, jsonapi.ErrInvalidDocument):
		return response.NewHTTPError(http.StatusBadRequest, "invalid document").
			WithCode("invalid_document").Wrap(err), metrics.OutcomeBadDocument
	case errors.Is(err, jsonapi.ErrDuplicateResource):
		return response.NewHTTPError(http.StatusUnprocessableEntity, "invalid document").
			WithCode("duplicate_resource").Wrap(err), metrics.OutcomeUnprocessable
	case errors.Is(err, entities.ErrMissingSingleton):
		return response.NewHTTPError(http.StatusUnprocessableEntity, "invalid document").
			WithCode("missing_site").Wrap(err), metrics.OutcomeUnprocessable
	case errors.Is(err, preview.ErrItemNotFound):
		return response.NewHTTPError(http.StatusNotFound, "item not found").
			WithCode("item_not_found").WithParameter("item").Wrap(err), metrics.OutcomeNotFound
	case errors.Is(err, preview.ErrInvalidSelector):
		return response.NewHTTPError(http.StatusBadRequest, "invalid selector").Wrap(err),
			metrics.OutcomeBadDocument
	default:
		return response.NewHTTPError(http.StatusInternalServerError, "internal server error"),
			metrics.OutcomeError
	}
}
