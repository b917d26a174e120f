package db

import (
	"encoding/json"
	"fmt"

	"github.com/adaptune/temper/constants"
	"github.com/adaptune/temper/model"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/dynamodb"
)

func newClient() (*dynamodb.DynamoDB, error) {
	endpoint := constants.GetDynamoEndpoint()
	sess, err := session.NewSession(&aws.Config{
		Region:   aws.String("localhost"),
		Endpoint: &endpoint,
	})
	if err != nil {
		return nil, fmt.Errorf("could not create a DynamoDB session: %v", err)
	}
	return dynamodb.New(sess), nil
}

func GetPresets(names []string) (map[string]model.TuningPreset, error) {
	if len(names) > 10 {
		return nil, fmt.Errorf("not supposed to pass in more than 10 preset names, got %v", len(names))
	}

	res := make(map[string]model.TuningPreset)
	if len(names) == 0 {
		return res, nil
	}

	var keys []map[string]*dynamodb.AttributeValue
	for _, name := range names {
		key := make(map[string]*dynamodb.AttributeValue)
		key["PK"] = &dynamodb.AttributeValue{
			S: aws.String(name),
		}
		keys = append(keys, key)
	}

	client, err := newClient()
	if err != nil {
		return nil, err
	}

	table := constants.GetPresetTable()
	input := &dynamodb.BatchGetItemInput{
		RequestItems: map[string]*dynamodb.KeysAndAttributes{
			table: {Keys: keys},
		},
	}
	dbres, err := client.BatchGetItem(input)
	if err != nil {
		return nil, fmt.Errorf("error from DynamoDB: %v", err)
	}

	for _, v := range dbres.Responses[table] {
		var p model.TuningPreset
		p.Name = *v["PK"].S
		if v["Description"] != nil && v["Description"].S != nil {
			p.Description = *v["Description"].S
		}
		if v["Config"] != nil && v["Config"].S != nil {
			if err := json.Unmarshal([]byte(*v["Config"].S), &p.Input); err != nil {
				return nil, fmt.Errorf("preset %v has a bad config: %v", p.Name, err)
			}
		}
		res[p.Name] = p
	}

	return res, nil
}

func PutPreset(p model.TuningPreset) error {
	config, err := json.Marshal(p.Input)
	if err != nil {
		return err
	}

	client, err := newClient()
	if err != nil {
		return err
	}

	item := map[string]*dynamodb.AttributeValue{
		"PK":          {S: aws.String(p.Name)},
		"Description": {S: aws.String(p.Description)},
		"Config":      {S: aws.String(string(config))},
	}
	_, err = client.PutItem(&dynamodb.PutItemInput{
		TableName: aws.String(constants.GetPresetTable()),
		Item:      item,
	})
	if err != nil {
		return fmt.Errorf("error from DynamoDB: %v", err)
	}
	return nil
}
