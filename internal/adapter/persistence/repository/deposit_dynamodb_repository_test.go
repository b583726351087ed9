package repository

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"interior_budget/internal/domain/entities"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

func TestDepositItemMapping(t *testing.T) {
	d := entities.Deposit{
		ID:                 "mp-1",
		QuoteID:            "q-1",
		Amount:             864.6,
		Date:               time.Date(2026, 5, 2, 9, 30, 0, 0, time.UTC),
		Status:             entities.DepositStatusApproved,
		ProviderPayloadRaw: json.RawMessage(`{"id":"mp-1"}`),
	}

	it := toDepositItem(d)
	if it.Amount != "864.6" || it.ProviderPayloadRaw != `{"id":"mp-1"}` {
		t.Fatalf("unexpected item %+v", it)
	}
	back := fromDepositItem(it)
	if back.Amount != 864.6 || !back.Date.Equal(d.Date) || string(back.ProviderPayloadRaw) != `{"id":"mp-1"}` {
		t.Fatalf("mapping lost data: %+v", back)
	}

	if got := fromDepositItem(depositItem{ID: "x"}); got.ProviderPayloadRaw != nil {
		t.Fatalf("expected nil payload, got %s", got.ProviderPayloadRaw)
	}
}

func TestDepositDynamoRepository_Create(t *testing.T) {
	fake := &fakeDynamo{}
	repo := newDepositRepository(fake, "deposits_test")

	if _, err := repo.Create(context.Background(), entities.Deposit{ID: "mp-1", QuoteID: "q-1"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if aws.ToString(fake.put.TableName) != "deposits_test" {
		t.Fatalf("unexpected table %s", aws.ToString(fake.put.TableName))
	}
	if _, ok := fake.put.Item["provider_payload_raw"]; ok {
		t.Fatalf("empty payload should be omitted")
	}
}

func TestDepositDynamoRepository_ListByQuoteID(t *testing.T) {
	t.Run("queries index", func(t *testing.T) {
		av1, _ := attributevalue.MarshalMap(toDepositItem(entities.Deposit{ID: "a", QuoteID: "q-1", Amount: 10}))
		av2, _ := attributevalue.MarshalMap(toDepositItem(entities.Deposit{ID: "b", QuoteID: "q-1", Amount: 20}))
		fake := &fakeDynamo{queryItems: []map[string]types.AttributeValue{av1, av2}}
		repo := newDepositRepository(fake, "")

		got, err := repo.ListByQuoteID(context.Background(), "q-1")
		if err != nil || len(got) != 2 || got[1].Amount != 20 {
			t.Fatalf("unexpected result %+v err=%v", got, err)
		}
		if aws.ToString(fake.query.IndexName) != "quote_id-index" || aws.ToString(fake.query.TableName) != "deposits" {
			t.Fatalf("unexpected query %+v", fake.query)
		}
	})

	t.Run("error", func(t *testing.T) {
		repo := newDepositRepository(&fakeDynamo{err: errors.New("boom")}, "")
		if _, err := repo.ListByQuoteID(context.Background(), "q-1"); err == nil {
			t.Fatalf("expected error")
		}
	})
}

func TestMergeNames(t *testing.T) {
	got := mergeNames(map[string]string{"#a": "a"}, map[string]string{"#b": "b"})
	if len(got) != 2 || got["#a"] != "a" || got["#b"] != "b" {
		t.Fatalf("unexpected merge %v", got)
	}
	if got := mergeNames(nil, map[string]string{"#b": "b"}); got["#b"] != "b" {
		t.Fatalf("unexpected merge %v", got)
	}
}
