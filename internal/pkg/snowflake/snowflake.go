// Copyright 2024 ecartisans
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package snowflake

import (
	"fmt"

	"github.com/bwmarrin/snowflake"
)

// MerchantOrderNoGenerator 生成金流對帳號(MerchantOrderNo)。
// 藍新要求純英數且不超過 30 字元, snowflake 的 int64 十進位最多 19 位,
// 天然滿足, 同時保證多實例下不重號。
type MerchantOrderNoGenerator struct {
	node *snowflake.Node
}

func NewMerchantOrderNoGenerator(nodeID int64) (*MerchantOrderNoGenerator, error) {
	node, err := snowflake.NewNode(nodeID)
	if err != nil {
		return nil, fmt.Errorf("初始化snowflake節點失敗: %w", err)
	}
	return &MerchantOrderNoGenerator{node: node}, nil
}

func (g *MerchantOrderNoGenerator) Generate() string {
	return g.node.Generate().String()
}
