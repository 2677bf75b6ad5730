package entity

// Genres lists every recognized genre tag in display order.
var Genres = []Genre{
	GenreAction,
	GenreAdventure,
	GenreAnimation,
	GenreBiography,
	GenreComedy,
	GenreCrime,
	GenreDrama,
	GenreFantasy,
	GenreHorror,
	GenreRomance,
	GenreSciFi,
	GenreThriller,
}
