package domain

import "github.com/google/uuid"

// Bundled fallback datasets. Whenever the live backend cannot supply rows for
// a resource (error, missing table, or an empty-but-successful query), the
// read services hand these out instead so the UI never goes blank. IDs are
// fixed so repeated fallbacks are stable across requests.

// FallbackWasteItems returns the bundled waste-sorting catalog.
// A fresh slice is returned on every call so callers can't mutate the bundle.
func FallbackWasteItems() []WasteItem {
	return []WasteItem{
		{ID: uuid.MustParse("a1e60000-0000-4000-8000-000000000001"), Name: "Meyve ve sebze atıkları", Category: WasteGreen, Compostable: true, Preparation: "Küçük parçalara bölün", Icon: "apple"},
		{ID: uuid.MustParse("a1e60000-0000-4000-8000-000000000002"), Name: "Kahve telvesi", Category: WasteGreen, Compostable: true, Preparation: "Filtre kağıdıyla birlikte eklenebilir", Icon: "coffee"},
		{ID: uuid.MustParse("a1e60000-0000-4000-8000-000000000003"), Name: "Çim kırpıntısı", Category: WasteGreen, Compostable: true, Preparation: "İnce katmanlar halinde serin", Icon: "grass"},
		{ID: uuid.MustParse("a1e60000-0000-4000-8000-000000000004"), Name: "Kuru yapraklar", Category: WasteBrown, Compostable: true, Preparation: "Ufalayarak ekleyin", Icon: "leaf"},
		{ID: uuid.MustParse("a1e60000-0000-4000-8000-000000000005"), Name: "Karton ve yumurta kolisi", Category: WasteBrown, Compostable: true, Preparation: "Yırtın ve ıslatın", Icon: "box"},
		{ID: uuid.MustParse("a1e60000-0000-4000-8000-000000000006"), Name: "Talaş", Category: WasteBrown, Compostable: true, Preparation: "İşlenmemiş ahşaptan olmalı", Icon: "wood"},
		{ID: uuid.MustParse("a1e60000-0000-4000-8000-000000000007"), Name: "Narenciye kabukları", Category: WasteCaution, Compostable: true, Preparation: "Az miktarda ve küçük parçalar halinde", Icon: "lemon"},
		{ID: uuid.MustParse("a1e60000-0000-4000-8000-000000000008"), Name: "Ekmek", Category: WasteCaution, Compostable: true, Preparation: "Kurutup ufalayın, haşere çekebilir", Icon: "bread"},
		{ID: uuid.MustParse("a1e60000-0000-4000-8000-000000000009"), Name: "Et ve kemik", Category: WasteProhibited, Compostable: false, Reason: "Koku yapar ve zararlı çeker", Method: "Evsel atık", Icon: "meat"},
		{ID: uuid.MustParse("a1e60000-0000-4000-8000-00000000000a"), Name: "Süt ürünleri", Category: WasteProhibited, Compostable: false, Reason: "Küflenir ve koku yapar", Method: "Evsel atık", Icon: "milk"},
		{ID: uuid.MustParse("a1e60000-0000-4000-8000-00000000000b"), Name: "Kızartma yağı", Category: WasteProhibited, Compostable: false, Reason: "Ayrışmayı yavaşlatır", Method: "Atık yağ toplama noktası", Icon: "oil"},
		{ID: uuid.MustParse("a1e60000-0000-4000-8000-00000000000c"), Name: "Pil", Category: WasteProhibited, Compostable: false, Reason: "Ağır metal içerir", Method: "Atık pil kutusu", Icon: "battery"},
	}
}

// FallbackStations returns the seven bundled collection points shown on the
// map when the stations table is unreachable or empty.
func FallbackStations() []Station {
	return []Station{
		{ID: uuid.MustParse("57a70000-0000-4000-8000-000000000001"), Name: "Okul Bahçesi Kompost Alanı", Kind: StationOrganic, Lat: 39.9255, Lng: 32.8663, Verified: true, Distance: "Okulda"},
		{ID: uuid.MustParse("57a70000-0000-4000-8000-000000000002"), Name: "Mahalle Kağıt Kumbarası", Kind: StationPaper, Lat: 39.9271, Lng: 32.8598, Verified: true, Distance: "400 m"},
		{ID: uuid.MustParse("57a70000-0000-4000-8000-000000000003"), Name: "Belediye Cam Konteyneri", Kind: StationGlass, Lat: 39.9238, Lng: 32.8711, Verified: true, Distance: "650 m"},
		{ID: uuid.MustParse("57a70000-0000-4000-8000-000000000004"), Name: "Market Önü Plastik Kutusu", Kind: StationPlastic, Lat: 39.9302, Lng: 32.8645, Verified: false, Distance: "800 m"},
		{ID: uuid.MustParse("57a70000-0000-4000-8000-000000000005"), Name: "Muhtarlık Atık Pil Kutusu", Kind: StationBattery, Lat: 39.9224, Lng: 32.8572, Verified: true, Distance: "1,1 km"},
		{ID: uuid.MustParse("57a70000-0000-4000-8000-000000000006"), Name: "Atık Yağ Toplama Noktası", Kind: StationOil, Lat: 39.9189, Lng: 32.8688, Verified: false, Distance: "1,4 km"},
		{ID: uuid.MustParse("57a70000-0000-4000-8000-000000000007"), Name: "Elektronik Atık Merkezi", Kind: StationElectronic, Lat: 39.9347, Lng: 32.8539, Verified: true, Distance: "2,0 km"},
	}
}

// FallbackGallery returns the bundled poster set for the content gallery.
func FallbackGallery() []GalleryImage {
	return []GalleryImage{
		{ID: uuid.MustParse("9a110000-0000-4000-8000-000000000001"), Title: "Toprağa Dönüş Afişi", Category: GalleryPoster, ImageURL: "/static/gallery/afis-topraga-donus.png"},
		{ID: uuid.MustParse("9a110000-0000-4000-8000-000000000002"), Title: "Kompost Döngüsü", Category: GalleryPoster, ImageURL: "/static/gallery/kompost-dongusu.png"},
		{ID: uuid.MustParse("9a110000-0000-4000-8000-000000000003"), Title: "Atık Ayrıştırma Rehberi", Category: GalleryPoster, ImageURL: "/static/gallery/ayristirma-rehberi.png"},
		{ID: uuid.MustParse("9a110000-0000-4000-8000-000000000004"), Title: "Sıfır Atık Haftası", Category: GalleryPhoto, ImageURL: "/static/gallery/sifir-atik-haftasi.jpg"},
	}
}
