package story

import "github.com/plus3/vigil/ecs"

// Seed populates storage with the cast: four enemies spread over Gotham and Tokyo,
// two heroes and two media sources.
func Seed(storage *ecs.Storage) {
	storage.CreateEntity(Enemy{"Joker"}, City{"Gotham"}, Action{"brings anarchy"})
	storage.CreateEntity(
		Enemy{"LeagueOfShadows"},
		City{"Gotham"},
		Action{"inspires terror with psychotropic gas"},
	)
	storage.CreateEntity(
		Enemy{"Catzilla"},
		City{"Tokyo"},
		Action{"breaks buildings with its tail and meows chthonically"},
	)
	storage.CreateEntity(Enemy{"Ykuza"}, City{"Tokyo"}, Action{"take the government hostage"})

	storage.CreateEntity(
		Hero{"Batman"},
		ActionList{[]string{
			"methodically beats with fists",
			"threatens in a low voice",
			"throws shurikens",
		}},
	)
	storage.CreateEntity(
		Hero{"Catwoman"},
		ActionList{[]string{
			"sharpens claws on enemies' faces",
			"smiles mysteriously",
			"jumps like lightning",
		}},
	)

	storage.CreateEntity(MediaSource{"Radio", "*creaks* Important news, residents!"})
	storage.CreateEntity(MediaSource{"TV", "*ahem-ahem* Breaking news! Today is a great day because"})
}
