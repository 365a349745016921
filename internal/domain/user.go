package domain

// UserDataVersion - текущая версия схемы профиля.
// Записи с другой версией при чтении считаются отсутствующими.
const UserDataVersion = 2

// UserData - мета-прогресс игрока, переживающий забеги.
// Одна запись на имя пользователя. Читается при логине,
// пишется при смерти, выходе с добычей и покупке улучшения.
type UserData struct {
	Version        int      `json:"version"`
	BankedTreasure int      `json:"bankedTreasure"` // Суммарно вынесенная добыча
	DeepestRoom    int      `json:"deepestRoom"`    // Рекорд глубины
	TombFragments  int      `json:"tombFragments"`  // Мета-валюта
	Unlocks        []string `json:"unlocks"`        // Купленные улучшения
}

// NewUserData создает пустой профиль для нового игрока.
func NewUserData() *UserData {
	return &UserData{
		Version: UserDataVersion,
		Unlocks: []string{},
	}
}

// HasUnlock проверяет, куплено ли улучшение или разблокировка.
func (u *UserData) HasUnlock(id string) bool {
	for _, v := range u.Unlocks {
		if v == id {
			return true
		}
	}
	return false
}
