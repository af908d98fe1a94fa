package router

import (
	"net/http"
	"strconv"

	"github.com/DjordjeVuckovic/pagekit/internal/apperr"
	"github.com/DjordjeVuckovic/pagekit/internal/catalog"
	"github.com/DjordjeVuckovic/pagekit/pkg/pagination"
	"github.com/DjordjeVuckovic/pagekit/pkg/uri"
	"github.com/labstack/echo/v4"
)

type ItemsRouter struct {
	e        *echo.Echo
	catalog  *catalog.Catalog
	maxLimit int
}

func NewItemsRouter(e *echo.Echo, c *catalog.Catalog, maxLimit int) *ItemsRouter {
	return &ItemsRouter{
		e:        e,
		catalog:  c,
		maxLimit: maxLimit,
	}
}

func (r *ItemsRouter) Bind() {
	r.e.GET("/items", r.listHandler)
	r.e.GET("/items/cursor", r.cursorHandler)
}

// listHandler godoc
// @Summary List items by numeric offset
// @Tags items
// @Produce json
// @Param offset query int false "Zero-based item offset"
// @Param limit query int false "Page size, non-positive values use the default"
// @Success 200 {object} ItemPage
// @Failure 400 {object} apperr.ErrorResponse
// @Router /items [get]
func (r *ItemsRouter) listHandler(c echo.Context) error {
	req := pagination.ParseQuery(c.QueryParams())

	offset, err := strconv.Atoi(req.OffsetToken())
	if err != nil || offset < 0 {
		return apperr.NewValidation("offset must be a non-negative integer")
	}

	base, err := requestURI(c)
	if err != nil {
		return err
	}

	limit := req.SanitizedLimitMax(r.maxLimit)
	items := r.catalog.Slice(offset, limit+1)

	return c.JSON(http.StatusOK, pagination.NewOffsetPage(items, req, base, r.maxLimit))
}

// cursorHandler godoc
// @Summary List items by opaque cursor
// @Tags items
// @Produce json
// @Param offset query string false "Cursor from paging.next, omit for the first page"
// @Param limit query int false "Page size, non-positive values use the default"
// @Success 200 {object} ItemPage
// @Failure 400 {object} apperr.ErrorResponse
// @Router /items/cursor [get]
func (r *ItemsRouter) cursorHandler(c echo.Context) error {
	req := pagination.ParseQuery(c.QueryParams())

	cursor := req.OffsetToken()
	if cursor == pagination.DefaultOffset {
		cursor = ""
	}

	base, err := requestURI(c)
	if err != nil {
		return err
	}

	limit := req.SanitizedLimitMax(r.maxLimit)
	items, err := r.catalog.After(cursor, limit+1)
	if err != nil {
		return err
	}

	page, err := pagination.NewCursorPage(items, req, base, r.maxLimit, catalog.EncodeCursor)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, page)
}

// ItemPage documents the paged response body
type ItemPage = pagination.Page[catalog.Item]

// requestURI is the base for next links; UpdateWithPageParams replaces
// the page parameters it already carries.
func requestURI(c echo.Context) (*uri.Builder, error) {
	b, err := uri.Parse(c.Request().URL.RequestURI())
	if err != nil {
		return nil, apperr.NewValidationWrap("invalid request URI", err)
	}
	return b, nil
}
