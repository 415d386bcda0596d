/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

// Package feed is a sample home feed: a few item types, their entity
// registrations and the handlers that render them through listview.
package feed

import (
	"fmt"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/go-openapi/strfmt"

	"github.com/suparena/multitype/registry"
)

// Timestamp is an RFC 3339 date-time stored as a string attribute in DynamoDB
// and written as a plain scalar in YAML fixtures.
type Timestamp struct {
	strfmt.DateTime
}

func (t Timestamp) MarshalDynamoDBAttributeValue() (types.AttributeValue, error) {
	return &types.AttributeValueMemberS{Value: t.String()}, nil
}

func (t *Timestamp) UnmarshalDynamoDBAttributeValue(av types.AttributeValue) error {
	s, ok := av.(*types.AttributeValueMemberS)
	if !ok {
		return fmt.Errorf("timestamp: expected string attribute, got %T", av)
	}
	dt, err := strfmt.ParseDateTime(s.Value)
	if err != nil {
		return err
	}
	t.DateTime = dt
	return nil
}

type Post struct {
	ID        string    `yaml:"id" dynamodbav:"Id"`
	Author    string    `yaml:"author" dynamodbav:"Author"`
	Title     string    `yaml:"title" dynamodbav:"Title"`
	Body      string    `yaml:"body" dynamodbav:"Body"`
	Published Timestamp `yaml:"published" dynamodbav:"Published"`
}

type Photo struct {
	ID      string `yaml:"id" dynamodbav:"Id"`
	URL     string `yaml:"url" dynamodbav:"Url"`
	Caption string `yaml:"caption" dynamodbav:"Caption"`
	Width   int    `yaml:"width" dynamodbav:"Width"`
	Height  int    `yaml:"height" dynamodbav:"Height"`
}

// Notice is any announcement shown in the feed. Implementations without a handler
// of their own are rendered by the Notice handler.
type Notice interface {
	Headline() string
	Severity() string
}

// Maintenance announces a planned service window.
type Maintenance struct {
	ID     string    `yaml:"id" dynamodbav:"Id"`
	Window string    `yaml:"window" dynamodbav:"Window"`
	Starts Timestamp `yaml:"starts" dynamodbav:"Starts"`
}

func (m Maintenance) Headline() string {
	return fmt.Sprintf("Maintenance %s starting %s", m.Window, m.Starts)
}

func (m Maintenance) Severity() string { return "warn" }

// Release announces a new version.
type Release struct {
	ID      string `yaml:"id" dynamodbav:"Id"`
	Version string `yaml:"version" dynamodbav:"Version"`
	Notes   string `yaml:"notes" dynamodbav:"Notes"`
}

func (r Release) Headline() string {
	return fmt.Sprintf("Version %s is out: %s", r.Version, r.Notes)
}

func (r Release) Severity() string { return "info" }

// RegisterEntities registers the feed's entity names.
func RegisterEntities(entities *registry.Entities) {
	entities.Register("Post", func() any { return &Post{} })
	entities.Register("Photo", func() any { return &Photo{} })
	entities.Register("Maintenance", func() any { return &Maintenance{} })
	entities.Register("Release", func() any { return &Release{} })
}
