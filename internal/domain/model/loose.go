package model

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
)

// LooseString 文字列フィールド
// 保存されている値が数値などでも文字列にキャストして読み込む（mongooseのString型と同じ）
type LooseString string

// LooseNumber 数値フィールド
// 数値文字列・Decimal128・真偽値も数値にキャストする
// 空文字やキャストできない文字列は NaN として保持し、JSONでは null になる
type LooseNumber float64

func (s LooseString) String() string {
	return string(s)
}

// UnmarshalBSONValue bson.ValueUnmarshaler の実装
func (s *LooseString) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	rv := bson.RawValue{Type: t, Value: data}

	switch t {
	case bsontype.String:
		*s = LooseString(rv.StringValue())
	case bsontype.Double:
		*s = LooseString(formatNumber(rv.Double()))
	case bsontype.Int32:
		*s = LooseString(strconv.FormatInt(int64(rv.Int32()), 10))
	case bsontype.Int64:
		*s = LooseString(strconv.FormatInt(rv.Int64(), 10))
	case bsontype.Decimal128:
		*s = LooseString(rv.Decimal128().String())
	case bsontype.Boolean:
		*s = LooseString(strconv.FormatBool(rv.Boolean()))
	case bsontype.ObjectID:
		*s = LooseString(rv.ObjectID().Hex())
	case bsontype.Null, bsontype.Undefined:
		*s = ""
	default:
		return fmt.Errorf("cannot cast %s to string", t)
	}
	return nil
}

// Float NaN（キャスト不能）の場合は ok=false
func (n LooseNumber) Float() (float64, bool) {
	f := float64(n)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// UnmarshalBSONValue bson.ValueUnmarshaler の実装
func (n *LooseNumber) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	rv := bson.RawValue{Type: t, Value: data}

	switch t {
	case bsontype.Double:
		*n = LooseNumber(rv.Double())
	case bsontype.Int32:
		*n = LooseNumber(rv.Int32())
	case bsontype.Int64:
		*n = LooseNumber(rv.Int64())
	case bsontype.Decimal128:
		*n = parseNumber(rv.Decimal128().String())
	case bsontype.String:
		*n = parseNumber(rv.StringValue())
	case bsontype.Boolean:
		if rv.Boolean() {
			*n = 1
		} else {
			*n = 0
		}
	case bsontype.Null, bsontype.Undefined:
		*n = LooseNumber(math.NaN())
	default:
		return fmt.Errorf("cannot cast %s to number", t)
	}
	return nil
}

// MarshalJSON NaN/Infは null として出力する（JSON.stringifyと同じ）
func (n LooseNumber) MarshalJSON() ([]byte, error) {
	f, ok := n.Float()
	if !ok {
		return []byte("null"), nil
	}
	return json.Marshal(f)
}

// UnmarshalJSON null は NaN として読み込む
func (n *LooseNumber) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*n = LooseNumber(math.NaN())
		return nil
	}
	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return err
	}
	*n = LooseNumber(f)
	return nil
}

func parseNumber(s string) LooseNumber {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return LooseNumber(math.NaN())
	}
	return LooseNumber(f)
}

// formatNumber JavaScriptのString(number)に近い表記
func formatNumber(f float64) string {
	if math.Abs(f) >= 1e21 {
		return strconv.FormatFloat(f, 'g', -1, 64)
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}
