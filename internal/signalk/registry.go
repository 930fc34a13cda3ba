package signalk

import (
	"encoding/json"
	"log"

	"github.com/ngmaloney/signalk-terminal/internal/models"
)

// Internal types for the /vessels/ response. Only the fields the dashboard reads
// are declared; SignalK nests every leaf as {"value": ..., "timestamp": ...}.

type vesselDoc struct {
	Navigation *navigationDoc `json:"navigation"`
	Sensors    *sensorsDoc    `json:"sensors"`
}

type navigationDoc struct {
	Position *struct {
		Value *models.Position `json:"value"`
	} `json:"position"`
}

type sensorsDoc struct {
	AIS *struct {
		Class *struct {
			Value string `json:"value"`
		} `json:"class"`
	} `json:"ais"`
}

func (d vesselDoc) position() *models.Position {
	if d.Navigation == nil || d.Navigation.Position == nil {
		return nil
	}
	return d.Navigation.Position.Value
}

func (d vesselDoc) aisClass() string {
	if d.Sensors == nil || d.Sensors.AIS == nil || d.Sensors.AIS.Class == nil {
		return ""
	}
	return d.Sensors.AIS.Class.Value
}

// buildRegistry decodes each vessel on its own so one bad record
// does not hide the rest of the traffic
func buildRegistry(docs map[string]json.RawMessage) models.Registry {
	registry := make(models.Registry, len(docs))
	for id, raw := range docs {
		var doc vesselDoc
		if err := json.Unmarshal(raw, &doc); err != nil {
			log.Printf("skipping vessel record (id=%s): %v", id, err)
			continue
		}
		registry[id] = models.VesselRecord{
			ID:       id,
			Position: doc.position(),
			AISClass: doc.aisClass(),
		}
	}
	return registry
}
