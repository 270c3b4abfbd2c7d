package ecs

// EntityId packs the archetype hash into the upper 32 bits and the slot index
// inside that archetype into the lower 32 bits. An id changes whenever the
// entity moves to another archetype; hold an EntityRef to follow it.
type EntityId uint64

// NewEntityId builds an EntityId from an archetype hash and a slot index.
func NewEntityId(archetypeId uint32, index uint32) EntityId {
	return EntityId(uint64(archetypeId)<<32 | uint64(index))
}

// ArchetypeId returns the archetype half of the id.
func (e EntityId) ArchetypeId() uint32 {
	return uint32(e >> 32)
}

// Index returns the slot half of the id.
func (e EntityId) Index() uint32 {
	return uint32(e & 0xFFFFFFFF)
}

// EntityRef follows an entity across archetype moves. Id is zero once the
// entity has been deleted.
type EntityRef struct {
	Id        EntityId
	Archetype *Archetype
}
