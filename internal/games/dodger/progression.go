package dodger

// Ramp returns the progress after a scoring tick that reached score.
// Fall speed steps up every SpeedInterval points past SpeedFloor with no
// cap; the spawn rate steps down every SpawnRateInterval points until it
// reaches MinSpawnRate. The two curves are independent.
func (p Progress) Ramp(score int, r *Rules) Progress {
	if score > r.SpeedFloor && (score-r.SpeedFloor)%r.SpeedInterval == 0 {
		p.ObstacleSpeed += r.SpeedStep
	}
	if score%r.SpawnRateInterval == 0 {
		p.SpawnRate = max(r.MinSpawnRate, p.SpawnRate-r.SpawnRateStep)
	}
	return p
}
