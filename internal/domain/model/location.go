package model

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
)

// Location 店舗の所在地（locationsコレクション）
// geolocation は [緯度, 経度] の順で保存されている
type Location struct {
	ID          string        `json:"_id,omitempty" bson:"_id,omitempty" firestore:"-"`
	Image       *LooseString  `json:"image,omitempty" bson:"image,omitempty" firestore:"image,omitempty"`
	City        *LooseString  `json:"city,omitempty" bson:"city,omitempty" firestore:"city,omitempty"`
	Street      *LooseString  `json:"street,omitempty" bson:"street,omitempty" firestore:"street,omitempty"`
	Miles       *LooseString  `json:"miles,omitempty" bson:"miles,omitempty" firestore:"miles,omitempty"`
	Phone       *LooseString  `json:"phone,omitempty" bson:"phone,omitempty" firestore:"phone,omitempty"`
	Hours       *LooseString  `json:"hours,omitempty" bson:"hours,omitempty" firestore:"hours,omitempty"`
	Address     *LooseString  `json:"address,omitempty" bson:"address,omitempty" firestore:"address,omitempty"`
	Geolocation []LooseNumber `json:"geolocation" bson:"geolocation" firestore:"geolocation"`
}

// Normalize 保存されていないgeolocationを空配列としてシリアライズさせる
func (l *Location) Normalize() {
	if l.Geolocation == nil {
		l.Geolocation = []LooseNumber{}
	}
}

// Point geolocation を orb.Point（経度, 緯度）に変換する
// 数値が2つ未満、またはキャストできない値の場合は false を返す
func (l *Location) Point() (orb.Point, bool) {
	if len(l.Geolocation) < 2 {
		return orb.Point{}, false
	}
	lat, okLat := l.Geolocation[0].Float()
	lng, okLng := l.Geolocation[1].Float()
	if !okLat || !okLng {
		return orb.Point{}, false
	}
	return orb.Point{lng, lat}, true
}

// DistanceFrom 指定地点からの距離（メートル、haversine）
func (l *Location) DistanceFrom(origin orb.Point) (float64, bool) {
	p, ok := l.Point()
	if !ok {
		return 0, false
	}
	return geo.DistanceHaversine(origin, p), true
}
