package network

import (
	"sync"
)

// Broadcaster занимается только доставкой сообщений подписчикам.
// Подписчик - одно WebSocket-соединение, ключ - имя пользователя.
type Broadcaster struct {
	mu sync.RWMutex
	// Мапа: username -> личный канал соединения
	subscribers map[string]chan any
}

func NewBroadcaster() *Broadcaster {
	return &Broadcaster{
		subscribers: make(map[string]chan any),
	}
}

// Register создает личный канал для пользователя.
// Повторный логин под тем же именем вытесняет старое соединение.
func (b *Broadcaster) Register(username string) chan any {
	b.mu.Lock()
	defer b.mu.Unlock()

	if old, ok := b.subscribers[username]; ok {
		close(old)
	}

	ch := make(chan any, 100)
	b.subscribers[username] = ch
	return ch
}

// Unregister удаляет подписчика. Канал закрывается, только если он
// все еще принадлежит этому соединению: при вытеснении старый
// обработчик не должен убить нового подписчика.
func (b *Broadcaster) Unregister(username string, ch chan any) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if cur, ok := b.subscribers[username]; ok && cur == ch {
		close(cur)
		delete(b.subscribers, username)
	}
}

// SendTo отправляет сообщение конкретному пользователю (Unicast).
// Переполненный канал означает отстающего клиента: кадр просто
// пропускается, следующий снимок все равно полный.
func (b *Broadcaster) SendTo(username string, msg any) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if ch, ok := b.subscribers[username]; ok {
		select {
		case ch <- msg:
		default:
		}
	}
}

// HasSubscriber проверяет, подключен ли пользователь.
// Забеги без живого соединения не рассылаются.
func (b *Broadcaster) HasSubscriber(username string) bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	_, ok := b.subscribers[username]
	return ok
}

// SubscriberCount возвращает количество активных подписчиков.
func (b *Broadcaster) SubscriberCount() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subscribers)
}
