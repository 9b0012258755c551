package handler

import (
	"errors"
	"net/http"
	"sort"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/paulmach/orb"

	"BagelShop-API/internal/domain/model"
	"BagelShop-API/internal/domain/repository"
)

var errInvalidNear = errors.New("near must be formatted as lat,long")

// LocationsHandler 店舗一覧のHTTPハンドラー
type LocationsHandler struct {
	locations repository.LocationsRepository
	policy    ErrorPolicy
}

// NewLocationsHandler LocationsHandlerの新しいインスタンスを作成
func NewLocationsHandler(locations repository.LocationsRepository, policy ErrorPolicy) *LocationsHandler {
	return &LocationsHandler{
		locations: locations,
		policy:    policy,
	}
}

// GetLocations GET /locations - 全店舗を返す
// near=lat,long が指定された場合のみ近い順に並べ替える
func (h *LocationsHandler) GetLocations(c *gin.Context) {
	var origin *orb.Point
	if near := c.Query("near"); near != "" {
		p, err := parseNear(near)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":   "Invalid near parameter",
				"details": err.Error(),
			})
			return
		}
		origin = &p
	}

	locations, err := h.locations.FindAll(c.Request.Context())
	if err != nil {
		h.policy.internalError(c, "fetching locations", err)
		return
	}
	if locations == nil {
		locations = []model.Location{}
	}

	if origin != nil {
		sortByDistance(locations, *origin)
	}

	c.JSON(http.StatusOK, locations)
}

// parseNear "lat,long" を orb.Point（経度, 緯度）に変換する
func parseNear(s string) (orb.Point, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return orb.Point{}, errInvalidNear
	}

	lat, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil || lat < -90 || lat > 90 {
		return orb.Point{}, errInvalidNear
	}
	lng, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil || lng < -180 || lng > 180 {
		return orb.Point{}, errInvalidNear
	}

	return orb.Point{lng, lat}, nil
}

// sortByDistance 近い順に並べ替える。座標を持たない店舗は末尾（元の順序のまま）
func sortByDistance(locations []model.Location, origin orb.Point) {
	type keyed struct {
		loc      model.Location
		distance float64
		ok       bool
	}

	ks := make([]keyed, len(locations))
	for i, loc := range locations {
		d, ok := loc.DistanceFrom(origin)
		ks[i] = keyed{loc: loc, distance: d, ok: ok}
	}

	sort.SliceStable(ks, func(i, j int) bool {
		if ks[i].ok != ks[j].ok {
			return ks[i].ok
		}
		return ks[i].ok && ks[i].distance < ks[j].distance
	})

	for i := range ks {
		locations[i] = ks[i].loc
	}
}
