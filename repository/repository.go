// repository/repository.go
package repository

import (
	"encoding/json"
	"fmt"

	"github.com/topvan/topvan-backend/store"
)

// toDoc converts an entity struct into a store document, dropping the id
// field (ids live next to documents, not inside them)
func toDoc(entity interface{}) (map[string]interface{}, error) {
	raw, err := json.Marshal(entity)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal entity: %v", err)
	}
	var doc map[string]interface{}
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("failed to convert entity to document: %v", err)
	}
	delete(doc, "id")
	return doc, nil
}

// fromRecord decodes a store record into an entity struct, injecting the
// store-assigned id
func fromRecord(rec store.Record, entity interface{}) error {
	data := make(map[string]interface{}, len(rec.Data)+1)
	for key, value := range rec.Data {
		data[key] = value
	}
	data["id"] = rec.ID

	raw, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to marshal document %s: %v", rec.ID, err)
	}
	if err := json.Unmarshal(raw, entity); err != nil {
		return fmt.Errorf("failed to decode document %s: %v", rec.ID, err)
	}
	return nil
}
