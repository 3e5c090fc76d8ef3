package world

// Action identifies what a lifecycle event reports.
type Action string

const (
	ActionLayerAdd     Action = "layer-add"
	ActionLayerRemove  Action = "layer-remove"
	ActionLayerUpdate  Action = "layer-update"
	ActionLayerReorder Action = "layer-reorder"
	ActionLayerOffset  Action = "layer-offset"
	ActionVoxelSet     Action = "voxel-set"
	ActionVoxelRemove  Action = "voxel-remove"
)

// Event is delivered to the registered listener on every structural or
// voxel mutation. External systems (undo stacks, editor panels) mirror
// state from these; the core never depends on what the listener does.
type Event struct {
	LayerName string
	Action    Action
	Metadata  map[string]any
}

// Listener receives lifecycle events.
type Listener func(Event)

func (w *World) emit(layerName string, action Action, meta map[string]any) {
	if w.listener != nil {
		w.listener(Event{LayerName: layerName, Action: action, Metadata: meta})
	}
}
