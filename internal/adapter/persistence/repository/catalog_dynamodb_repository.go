package repository

import (
	"context"
	"sort"

	"cablequote/internal/domain/entities"
	"cablequote/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	DefaultProductsTableName  = "cablequote_products"
	DefaultCustomersTableName = "cablequote_customers"
)

type productItem struct {
	ID        string  `dynamodbav:"id"`
	Name      string  `dynamodbav:"name"`
	Category  string  `dynamodbav:"category"`
	Voltage   string  `dynamodbav:"voltage"`
	Material  string  `dynamodbav:"material"`
	Gauge     string  `dynamodbav:"gauge"`
	BasePrice float64 `dynamodbav:"base_price"`
	Unit      string  `dynamodbav:"unit"`
	Stock     int     `dynamodbav:"stock"`
}

type customerItem struct {
	ID              string  `dynamodbav:"id"`
	Name            string  `dynamodbav:"name"`
	Contact         string  `dynamodbav:"contact"`
	Email           string  `dynamodbav:"email"`
	Phone           string  `dynamodbav:"phone"`
	Address         string  `dynamodbav:"address"`
	Tier            string  `dynamodbav:"tier"`
	DiscountPercent float64 `dynamodbav:"discount_percent"`
	PaymentTerms    string  `dynamodbav:"payment_terms"`
	TotalOrders     int     `dynamodbav:"total_orders"`
	YearlyVolume    float64 `dynamodbav:"yearly_volume"`
}

// ProductDynamoRepository reads the catalog from DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// The catalog is small, so List is a full scan sorted by id.
type ProductDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IProductRepository = (*ProductDynamoRepository)(nil)

func NewProductDynamoRepository(ddb DynamoAPI, tableName string) *ProductDynamoRepository {
	return &ProductDynamoRepository{
		ddb:       ddb,
		tableName: tableOrDefault(tableName, DefaultProductsTableName),
	}
}

func (r *ProductDynamoRepository) GetByID(ctx context.Context, id string) (entities.Product, error) {
	item, found, err := getByID[productItem](ctx, r.ddb, r.tableName, id)
	if err != nil || !found {
		return entities.Product{}, err
	}
	return fromProductItem(item), nil
}

func (r *ProductDynamoRepository) List(ctx context.Context) ([]entities.Product, error) {
	items, err := scanAll[productItem](ctx, r.ddb, &dynamodb.ScanInput{TableName: aws.String(r.tableName)})
	if err != nil {
		return nil, err
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })

	out := make([]entities.Product, 0, len(items))
	for _, it := range items {
		out = append(out, fromProductItem(it))
	}
	return out, nil
}

// Put stores p unless a product with the same id exists. It reports
// whether the item was written.
func (r *ProductDynamoRepository) Put(ctx context.Context, p entities.Product) (bool, error) {
	return putIfAbsent(ctx, r.ddb, r.tableName, toProductItem(p))
}

type CustomerDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.ICustomerRepository = (*CustomerDynamoRepository)(nil)

func NewCustomerDynamoRepository(ddb DynamoAPI, tableName string) *CustomerDynamoRepository {
	return &CustomerDynamoRepository{
		ddb:       ddb,
		tableName: tableOrDefault(tableName, DefaultCustomersTableName),
	}
}

func (r *CustomerDynamoRepository) GetByID(ctx context.Context, id string) (entities.Customer, error) {
	item, found, err := getByID[customerItem](ctx, r.ddb, r.tableName, id)
	if err != nil || !found {
		return entities.Customer{}, err
	}
	return fromCustomerItem(item), nil
}

func (r *CustomerDynamoRepository) List(ctx context.Context) ([]entities.Customer, error) {
	items, err := scanAll[customerItem](ctx, r.ddb, &dynamodb.ScanInput{TableName: aws.String(r.tableName)})
	if err != nil {
		return nil, err
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })

	out := make([]entities.Customer, 0, len(items))
	for _, it := range items {
		out = append(out, fromCustomerItem(it))
	}
	return out, nil
}

func (r *CustomerDynamoRepository) Put(ctx context.Context, c entities.Customer) (bool, error) {
	return putIfAbsent(ctx, r.ddb, r.tableName, toCustomerItem(c))
}

func getByID[T any](ctx context.Context, ddb DynamoAPI, table, id string) (T, bool, error) {
	var it T
	out, err := ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(table),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return it, false, err
	}
	if len(out.Item) == 0 {
		return it, false, nil
	}
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return it, false, err
	}
	return it, true, nil
}

func putIfAbsent(ctx context.Context, ddb DynamoAPI, table string, item any) (bool, error) {
	av, err := attributevalue.MarshalMap(item)
	if err != nil {
		return false, err
	}

	_, err = ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(table),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		if isConditionFailed(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func toProductItem(p entities.Product) productItem {
	return productItem{
		ID:        p.ID,
		Name:      p.Name,
		Category:  p.Category,
		Voltage:   p.Voltage,
		Material:  p.Material,
		Gauge:     p.Gauge,
		BasePrice: p.BasePrice,
		Unit:      p.Unit,
		Stock:     p.Stock,
	}
}

func fromProductItem(it productItem) entities.Product {
	return entities.Product{
		ID:        it.ID,
		Name:      it.Name,
		Category:  it.Category,
		Voltage:   it.Voltage,
		Material:  it.Material,
		Gauge:     it.Gauge,
		BasePrice: it.BasePrice,
		Unit:      it.Unit,
		Stock:     it.Stock,
	}
}

func toCustomerItem(c entities.Customer) customerItem {
	return customerItem{
		ID:              c.ID,
		Name:            c.Name,
		Contact:         c.Contact,
		Email:           c.Email,
		Phone:           c.Phone,
		Address:         c.Address,
		Tier:            string(c.Tier),
		DiscountPercent: c.DiscountPercent,
		PaymentTerms:    c.PaymentTerms,
		TotalOrders:     c.TotalOrders,
		YearlyVolume:    c.YearlyVolume,
	}
}

func fromCustomerItem(it customerItem) entities.Customer {
	return entities.Customer{
		ID:              it.ID,
		Name:            it.Name,
		Contact:         it.Contact,
		Email:           it.Email,
		Phone:           it.Phone,
		Address:         it.Address,
		Tier:            entities.Tier(it.Tier),
		DiscountPercent: it.DiscountPercent,
		PaymentTerms:    it.PaymentTerms,
		TotalOrders:     it.TotalOrders,
		YearlyVolume:    it.YearlyVolume,
	}
}
