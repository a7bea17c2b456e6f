package screen

// IncrementExtra adds one unit of the extra. Unknown ids are ignored.
func (s *FoodDetails) IncrementExtra(id uint) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if i := s.extraIndex(id); i != -1 {
		s.extras[i].Quantity++
	}
}

// DecrementExtra removes one unit of the extra, never going below zero.
func (s *FoodDetails) DecrementExtra(id uint) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if i := s.extraIndex(id); i != -1 && s.extras[i].Quantity >= 1 {
		s.extras[i].Quantity--
	}
}

func (s *FoodDetails) IncrementFood() {
	s.mu.Lock()
	s.quantity++
	s.mu.Unlock()
}

// DecrementFood keeps at least one unit of the food.
func (s *FoodDetails) DecrementFood() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.quantity >= 2 {
		s.quantity--
	}
}

func (s *FoodDetails) extraIndex(id uint) int {
	for i := range s.extras {
		if s.extras[i].ID == id {
			return i
		}
	}
	return -1
}
