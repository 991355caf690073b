package util

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

func NewDate(year, month, day int) time.Time {
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
}

func FloatPointer(f float64) *float64 {
	return &f
}

func StrPointer(s string) *string {
	return &s
}

func Int32Pointer(i int32) *int32 {
	return &i
}

func Int64Pointer(i int64) *int64 {
	return &i
}

func DecimalPointer(d decimal.Decimal) *decimal.Decimal {
	return &d
}

func Pprint(i interface{}) {
	bytes, err := json.MarshalIndent(i, "", "    ")
	if err != nil {
		panic(err)
	}
	fmt.Println(string(bytes))
}
