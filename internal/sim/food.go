package sim

// spawnFood creates one food item at a uniformly random cell. Occupancy is
// deliberately not checked: food may land on other food or on the snake.
func (s *Sim) spawnFood() {
	s.addFood(Position{
		X: s.rng.Intn(s.grid.Width),
		Y: s.rng.Intn(s.grid.Height),
	})
}

// addFood places a food item at p and returns its entity id.
func (s *Sim) addFood(p Position) Entity {
	e := s.allocEntity()
	s.positions[e] = p
	s.food = append(s.food, e)
	s.emit(EntityEvent{Op: OpSpawn, Entity: e, Kind: KindFood, Pos: p})
	return e
}

// detectEating destroys every food item under the post-move head and queues
// one growth event per item. Runs only on fired move ticks so consumption
// stays synchronized with movement.
func (s *Sim) detectEating() {
	head, ok := s.positions[s.snake[0]]
	if !ok {
		return
	}
	kept := s.food[:0]
	for _, f := range s.food {
		if s.positions[f] == head {
			delete(s.positions, f)
			s.emit(EntityEvent{Op: OpDespawn, Entity: f, Kind: KindFood, Pos: head})
			s.growth = append(s.growth, growthEvent{})
			continue
		}
		kept = append(kept, f)
	}
	s.food = kept
}
