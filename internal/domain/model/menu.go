package model

// Item メニューに埋め込まれる商品
// ストア側でバリデーションしないため全フィールドを任意扱いにする
type Item struct {
	ID          string       `json:"_id,omitempty" bson:"_id,omitempty" firestore:"-"`
	Name        *LooseString `json:"name,omitempty" bson:"name,omitempty" firestore:"name,omitempty"`
	Image       *LooseString `json:"image,omitempty" bson:"image,omitempty" firestore:"image,omitempty"`
	Description *LooseString `json:"description,omitempty" bson:"description,omitempty" firestore:"description,omitempty"`
	Rating      *LooseNumber `json:"rating,omitempty" bson:"rating,omitempty" firestore:"rating,omitempty"`
	Price       *LooseNumber `json:"price,omitempty" bson:"price,omitempty" firestore:"price,omitempty"`
}

// Menu titleで検索されるメニュー（menuコレクション）
type Menu struct {
	ID     string       `json:"_id,omitempty" bson:"_id,omitempty" firestore:"-"`
	Title  *LooseString `json:"title,omitempty" bson:"title,omitempty" firestore:"title,omitempty"`
	Slogan *LooseString `json:"slogan,omitempty" bson:"slogan,omitempty" firestore:"slogan,omitempty"`
	Image  *LooseString `json:"image,omitempty" bson:"image,omitempty" firestore:"image,omitempty"`
	Items  []Item       `json:"items" bson:"items" firestore:"items"`
}

// Normalize 保存されていない配列をnullではなく空配列としてシリアライズさせる
func (m *Menu) Normalize() {
	if m.Items == nil {
		m.Items = []Item{}
	}
}
