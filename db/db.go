package db

import (
	"strconv"

	"github.com/jsphweid/chordex/constants"
	"github.com/jsphweid/chordex/model"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/dynamodb"
)

// GetMidiMetadatas batch-fetches metadata rows keyed by filename. DynamoDB
// caps BatchGetItem well above this but callers here never need more.
func GetMidiMetadatas(filenames []string) map[string]model.MidiMetadata {
	if len(filenames) > 10 {
		panic("Not supposed to pass in more than 10 filenames!")
	}

	res := make(map[string]model.MidiMetadata)

	if len(filenames) == 0 {
		return res
	}

	var keys []map[string]*dynamodb.AttributeValue
	for _, filename := range filenames {
		keys = append(keys, map[string]*dynamodb.AttributeValue{
			"PK": {S: aws.String(filename)},
		})
	}

	endpoint := constants.GetDynamoEndpoint()
	session, err := session.NewSession(&aws.Config{
		Region:   aws.String("localhost"),
		Endpoint: &endpoint,
	})
	if err != nil {
		panic("Could not create a new DynamoDB session because " + err.Error())
	}

	client := dynamodb.New(session)
	input := &dynamodb.BatchGetItemInput{
		RequestItems: map[string]*dynamodb.KeysAndAttributes{
			constants.MetadataTable: {Keys: keys},
		},
	}
	dbres, err := client.BatchGetItem(input)
	if err != nil {
		panic("Error from DynamoDB: " + err.Error())
	}

	for _, v := range dbres.Responses[constants.MetadataTable] {
		var m model.MidiMetadata
		if year, ok := v["Year"]; ok && year.N != nil {
			parsed, _ := strconv.ParseUint(*year.N, 10, 32)
			m.Year = uint(parsed)
		}
		if artist, ok := v["Artist"]; ok && artist.S != nil {
			m.Artist = *artist.S
		}
		if release, ok := v["Release"]; ok && release.S != nil {
			m.Release = *release.S
		}
		if title, ok := v["Title"]; ok && title.S != nil {
			m.Title = *title.S
		}
		res[*v["PK"].S] = m
	}

	return res
}
