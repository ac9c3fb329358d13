package api

import (
	"net/http"

	reqdto "hotel-booking/internal/handler/dto/request"
	resdto "hotel-booking/internal/handler/dto/response"
	"hotel-booking/internal/handler/httperr"
	"hotel-booking/internal/pkg/config"
	"hotel-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type HotelHandler struct {
	hotels queries.HotelQueries
	cfg    config.Config
}

func NewHotelHandler(hotels queries.HotelQueries, cfg config.Config) *HotelHandler {
	return &HotelHandler{hotels: hotels, cfg: cfg}
}

// @Summary List hotels
// @Description Search by name or location and filter by price and rating. Both narrow the same list.
// @Tags hotels
// @Produce json
// @Param q query string false "Name or location"
// @Param minPrice query number false "Minimum price per night"
// @Param maxPrice query number false "Maximum price per night"
// @Param minRating query number false "Minimum rating"
// @Success 200 {array} resdto.HotelResponse
// @Failure 400 {object} httperr.Response
// @Router /api/hotels [get]
func (h *HotelHandler) List(c *gin.Context) {
	var q reqdto.HotelListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query", nil)
		return
	}

	ctx := c.Request.Context()
	var (
		list []*queries.HotelView
		err  error
	)
	filter := q.ToFilter()
	switch {
	case q.HasSearch() && !filter.IsEmpty():
		var found, filtered []*queries.HotelView
		if found, err = h.hotels.Search(ctx, q.Q); err == nil {
			if filtered, err = h.hotels.Filter(ctx, filter); err == nil {
				list = intersectHotels(found, filtered)
			}
		}
	case q.HasSearch():
		list, err = h.hotels.Search(ctx, q.Q)
	case !filter.IsEmpty():
		list, err = h.hotels.Filter(ctx, filter)
	default:
		list, err = h.hotels.List(ctx)
	}
	if err != nil {
		abortWithDomainError(c, err, "Failed to load hotels")
		return
	}
	c.JSON(http.StatusOK, resdto.FromHotelViews(list, h.cfg.Booking.Currency))
}

// @Summary Get hotel
// @Tags hotels
// @Produce json
// @Param id path string true "Hotel ID"
// @Success 200 {object} resdto.HotelResponse
// @Failure 404 {object} httperr.Response
// @Router /api/hotels/{id} [get]
func (h *HotelHandler) Get(c *gin.Context) {
	v, err := h.hotels.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWithDomainError(c, err, "Failed to load hotel")
		return
	}
	c.JSON(http.StatusOK, resdto.FromHotelView(v, h.cfg.Booking.Currency))
}

// @Summary Suggest hotels
// @Description Hotel names and locations close to a possibly misspelt query.
// @Tags hotels
// @Produce json
// @Param q query string true "Query"
// @Param limit query int false "Maximum suggestions"
// @Success 200 {array} resdto.SuggestionResponse
// @Failure 400 {object} httperr.Response
// @Router /api/hotels/suggestions [get]
func (h *HotelHandler) Suggestions(c *gin.Context) {
	var q reqdto.SuggestionQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query", nil)
		return
	}
	got, err := h.hotels.Suggest(c.Request.Context(), q.Q, q.Limit)
	if err != nil {
		abortWithDomainError(c, err, "Failed to load suggestions")
		return
	}
	c.JSON(http.StatusOK, resdto.FromSuggestionViews(got))
}

// keeps the order of a
func intersectHotels(a, b []*queries.HotelView) []*queries.HotelView {
	keep := make(map[string]struct{}, len(b))
	for _, v := range b {
		keep[v.ID] = struct{}{}
	}
	out := make([]*queries.HotelView, 0, len(a))
	for _, v := range a {
		if _, ok := keep[v.ID]; ok {
			out = append(out, v)
		}
	}
	return out
}
