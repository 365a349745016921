package domain

import "greed-server/pkg/geom"

// Типы врагов.
// RANGER, FAST и TANK зарезервированы: генератор комнат в этой версии
// создает только NORMAL и CHAMPION, но клиент и модель их уже понимают.
const (
	EnemyTypeNormal   = "NORMAL"
	EnemyTypeRanger   = "RANGER"
	EnemyTypeFast     = "FAST"
	EnemyTypeTank     = "TANK"
	EnemyTypeChampion = "CHAMPION"
)

// Типы подбираемых предметов на полу.
const (
	PickupTypeHealth   = "HEALTH"
	PickupTypeTreasure = "TREASURE"
)

// Состояния ловушки (шипы). Зарезервировано: генератор их пока не ставит.
const (
	HazardStateIdle   = "IDLE"
	HazardStateArming = "ARMING"
	HazardStateActive = "ACTIVE"
)

// Player - состояние героя внутри одного забега.
// Все таймеры - счетчики тиков (60 тиков ~ 1 секунда).
type Player struct {
	Position geom.Vector2D `json:"position"`

	Health    int     `json:"health"` // Может уйти в минус в момент смертельного удара
	MaxHealth int     `json:"maxHealth"`
	Size      float64 `json:"size"` // Радиус коллизии

	InvulnerabilityTimer int `json:"invulnerabilityTimer"` // >0 блокирует урон

	ActiveBoon         *Boon `json:"activeBoon,omitempty"` // Благословение на одну комнату
	ShotsFiredThisRoom int   `json:"shotsFiredThisRoom"`
	DamageMultiplier   int   `json:"damageMultiplier"` // 2 под проклятием "стеклянная пушка"
}

// Enemy - один враг в активной комнате.
type Enemy struct {
	ID       int64         `json:"id"`
	Position geom.Vector2D `json:"position"`
	Size     float64       `json:"size"`
	Type     string        `json:"type"`

	Health    float64 `json:"health"`
	MaxHealth float64 `json:"maxHealth"`
	Speed     float64 `json:"speed"`

	AttackCooldown int `json:"attackCooldown"` // Период стрельбы в тиках
	AttackTimer    int `json:"attackTimer"`    // Тиков до следующего выстрела

	HitTimer int  `json:"hitTimer,omitempty"` // Вспышка при попадании, чисто визуальная
	IsElite  bool `json:"isElite"`
}

// ContactDamage - урон при столкновении с игроком.
func (e *Enemy) ContactDamage(eliteDamage int) int {
	if e.IsElite {
		return eliteDamage
	}
	return 1
}

// Projectile - снаряд игрока или врага.
type Projectile struct {
	ID       int64         `json:"id"`
	Position geom.Vector2D `json:"position"`
	Velocity geom.Vector2D `json:"velocity"`
	Size     float64       `json:"size"`

	IsPlayerProjectile bool `json:"isPlayerProjectile"`

	// Bounces - оставшиеся отскоки от стен (дает проклятие "рикошет").
	Bounces int `json:"bounces"`

	// HomingTargetID - слабая ссылка на врага по ID. Каждый тик
	// разрешается заново по живому списку: цель могла уже умереть.
	// 0 означает "цель не захвачена".
	HomingTargetID int64 `json:"-"`
}

// Pickup - предмет на полу (сокровище или лечение).
type Pickup struct {
	ID       int64         `json:"id"`
	Type     string        `json:"type"`
	Position geom.Vector2D `json:"position"`
	Size     float64       `json:"size"`
	Life     int           `json:"life"`            // Тиков до исчезновения
	Value    int           `json:"value,omitempty"` // Сумма, только для TREASURE
}

// FloatingText - всплывающий текст урона/лута. Движком не читается,
// только стареет и уплывает вверх; клиент его рисует.
type FloatingText struct {
	ID       int64         `json:"id"`
	Text     string        `json:"text"`
	Position geom.Vector2D `json:"position"`
	Life     int           `json:"life"`
	Color    string        `json:"color"`
	Scale    bool          `json:"scale,omitempty"` // Анимация увеличения (подбор монет)
}

// Particle - косметическая частица.
type Particle struct {
	ID       int64         `json:"id"`
	Position geom.Vector2D `json:"position"`
	Velocity geom.Vector2D `json:"velocity"`
	Life     int           `json:"life"`
	Size     float64       `json:"size"`
	Color    string        `json:"color"`
}

// Hazard - шипастая ловушка. Зарезервированный вариант: модель и
// снапшот ее несут, генератор в этой версии ловушек не создает.
type Hazard struct {
	ID       int64         `json:"id"`
	Position geom.Vector2D `json:"position"`
	Size     float64       `json:"size"`
	State    string        `json:"state"`
	Timer    int           `json:"timer"`
}
