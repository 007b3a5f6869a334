package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"client-portal-service/internal/chatbot/core/domain"
	"client-portal-service/internal/chatbot/core/ports"
)

const (
	menusCollection        = "menus"
	interactionsCollection = "registros"
	answersCollection      = "respuestas"
)

// Store dials the document store per request. It holds configuration only;
// every session owns its own client and must be closed by the caller.
type Store struct {
	uri            string
	database       string
	connectTimeout time.Duration
}

var _ ports.ChatbotStorePort = (*Store)(nil)

func NewStore(uri, database string, connectTimeout time.Duration) *Store {
	return &Store{
		uri:            uri,
		database:       database,
		connectTimeout: connectTimeout,
	}
}

func (s *Store) Connect(ctx context.Context) (ports.ChatbotSession, error) {
	opts := options.Client().
		ApplyURI(s.uri).
		SetServerSelectionTimeout(s.connectTimeout)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ports.ErrStoreUnavailable, err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, s.connectTimeout)
	defer cancel()
	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("%w: %v", ports.ErrStoreUnavailable, err)
	}

	return &session{db: client.Database(s.database), client: client}, nil
}

type session struct {
	client *mongo.Client
	db     *mongo.Database
}

func (s *session) ListMenus(ctx context.Context) ([]domain.Menu, error) {
	cur, err := s.db.Collection(menusCollection).Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ports.ErrStoreUnavailable, err)
	}
	defer cur.Close(ctx)

	var menus []domain.Menu
	for cur.Next(ctx) {
		var doc bson.M
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("%w: %v", ports.ErrStoreUnavailable, err)
		}
		menus = append(menus, decodeMenu(doc))
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ports.ErrStoreUnavailable, err)
	}
	return menus, nil
}

func (s *session) ListInteractions(ctx context.Context) ([]domain.Interaction, error) {
	cur, err := s.db.Collection(interactionsCollection).Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ports.ErrStoreUnavailable, err)
	}
	defer cur.Close(ctx)

	var interactions []domain.Interaction
	for cur.Next(ctx) {
		var doc bson.M
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("%w: %v", ports.ErrStoreUnavailable, err)
		}
		interactions = append(interactions, decodeInteraction(doc))
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ports.ErrStoreUnavailable, err)
	}
	return interactions, nil
}

func (s *session) FindAnswer(ctx context.Context, id string) (*domain.Answer, error) {
	var doc bson.M
	err := s.db.Collection(answersCollection).FindOne(ctx, bson.M{"id": id}).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ports.ErrStoreUnavailable, err)
	}

	return &domain.Answer{
		ID:   coerceString(doc["id"]),
		Text: coerceString(doc["respuesta"]),
	}, nil
}

func (s *session) UpdateAnswer(ctx context.Context, id, text string) (int64, error) {
	res, err := s.db.Collection(answersCollection).UpdateOne(ctx,
		bson.M{"id": id},
		bson.M{"$set": bson.M{"respuesta": text}},
	)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ports.ErrStoreUnavailable, err)
	}
	return res.ModifiedCount, nil
}

func (s *session) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}
