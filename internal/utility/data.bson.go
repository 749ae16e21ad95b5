package utility

import (
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
)

// ToMap chuyển đổi interface thành bản đồ bằng cách marshal/unmarshal bson.
// Nó nhận interface làm tham số và trả về bản đồ và lỗi nếu có
func ToMap(s interface{}) (map[string]interface{}, error) {
	var stringInterfaceMap map[string]interface{}
	itr, err := bson.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("bson marshal failed: %w", err)
	}
	err = bson.Unmarshal(itr, &stringInterfaceMap)
	if err != nil {
		return nil, fmt.Errorf("bson unmarshal failed: %w", err)
	}
	return stringInterfaceMap, err
}

// ToStruct chuyển bản đồ (hoặc struct khác) về struct đích qua bson marshal/unmarshal.
// Dùng khi transform DTO sang model.
func ToStruct(src interface{}, dst interface{}) error {
	raw, err := bson.Marshal(src)
	if err != nil {
		return fmt.Errorf("bson marshal failed: %w", err)
	}
	if err := bson.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("bson unmarshal failed: %w", err)
	}
	return nil
}
