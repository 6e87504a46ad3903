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

package dao

import (
	"context"
	"encoding/json"

	"github.com/olivere/elastic/v7"
)

const ProductIndexName = "product_index"

type Product struct {
	ID           int64               `json:"id"`
	SellerID     int64               `json:"sellerID"`
	Title        string              `json:"title"`
	Category     string              `json:"category"`
	Description  string              `json:"description"`
	Keywords     []string            `json:"keywords"`
	EsHighLights map[string][]string `json:"-"`
}

type ProductDAO interface {
	SearchProduct(ctx context.Context, offset, limit int, keywords string) ([]Product, error)
	// Input 寫入或覆蓋文檔, docID 取商品ID
	Input(ctx context.Context, docID string, doc Product) error
	Delete(ctx context.Context, docID string) error
}

func NewProductElasticDAO(client *elastic.Client) ProductDAO {
	return &productElasticDAO{client: client}
}

type productElasticDAO struct {
	client *elastic.Client
}

func (p *productElasticDAO) SearchProduct(ctx context.Context, offset, limit int, keywords string) ([]Product, error) {
	query := elastic.NewBoolQuery().Must(
		elastic.NewBoolQuery().Should(
			// 名稱權重最高, 其次賣家自填的關鍵字
			elastic.NewMatchQuery("title", keywords).Boost(3),
			elastic.NewMatchQuery("keywords", keywords).Boost(2),
			elastic.NewMatchQuery("category", keywords),
			elastic.NewMatchQuery("description", keywords)))
	resp, err := p.client.Search(ProductIndexName).
		From(offset).
		Size(limit).
		Query(query).
		Highlight(elastic.NewHighlight().Fields(
			elastic.NewHighlighterField("title"),
			elastic.NewHighlighterField("description"))).
		Do(ctx)
	if err != nil {
		return nil, err
	}
	res := make([]Product, 0, len(resp.Hits.Hits))
	for _, hit := range resp.Hits.Hits {
		var ele Product
		err = json.Unmarshal(hit.Source, &ele)
		if err != nil {
			return nil, err
		}
		// SearchHitHighlight 本身就是 map[string][]string, 沒命中高亮時為 nil
		ele.EsHighLights = hit.Highlight
		res = append(res, ele)
	}
	return res, nil
}

func (p *productElasticDAO) Input(ctx context.Context, docID string, doc Product) error {
	_, err := p.client.Index().
		Index(ProductIndexName).
		Id(docID).
		BodyJson(doc).
		Do(ctx)
	return err
}

func (p *productElasticDAO) Delete(ctx context.Context, docID string) error {
	_, err := p.client.Delete().
		Index(ProductIndexName).
		Id(docID).
		Do(ctx)
	if elastic.IsNotFound(err) {
		return nil
	}
	return err
}
