package domain

// Rand is the source of randomness the Machine draws from. *rand.Rand from
// math/rand/v2 satisfies it; tests supply scripted implementations.
type Rand interface {
	IntN(n int) int
	Shuffle(n int, swap func(i, j int))
}

// TopicPool is the fixed list a game's topic is drawn from
type TopicPool []string

// Draw returns a uniformly random topic, or "" for an empty pool
func (p TopicPool) Draw(rng Rand) string {
	if len(p) == 0 {
		return ""
	}
	return p[rng.IntN(len(p))]
}

// Contains reports whether topic is part of the pool
func (p TopicPool) Contains(topic string) bool {
	return contains(p, topic)
}

// DefaultTopics is the built-in pool of everyday nouns
var DefaultTopics = TopicPool{
	"マンガ", "小説", "辞書", "手帳", "雑誌",
	"頭", "首", "肩", "体", "手", "足",
	"壁", "柱", "床", "天井", "屋根", "屋上",
	"木", "火", "土", "金", "水", "空気",
	"ギター", "ピアノ", "ドラム", "笛", "バイオリン", "トランペット",
	"寝室", "台所", "食卓", "トイレ", "風呂", "庭",
	"動物園", "遊園地", "ピクニック", "山登り", "海水浴", "カラオケ",
	"火力発電所", "乾電池", "風車", "太陽電池", "暖炉", "蒸気機関",
	"自動車", "自転車", "三輪車", "オートバイ", "電車", "飛行機",
	"歩道", "つり橋", "トンネル", "ガードレール", "横断歩道", "信号機",
	"太陽", "地球", "月", "宇宙飛行士", "天文学者", "スペースシャトル",
	"アパート", "デパート", "ファストフード", "コンビニ", "カフェ", "レストラン",
	"テニス", "野球", "サッカー", "卓球", "ゴルフ", "レスリング",
	"帽子", "メガネ", "Tシャツ", "パンツ", "くつした", "くつ",
	"ガラパゴス諸島", "南極", "ハワイ", "ニュージーランド", "エベレスト", "ムー大陸",
	"消防車", "パトカー", "ブルドーザー", "クレーン車", "レッカー車", "トラクター",
	"交通標識", "電信柱", "鉄塔", "ブロック塀", "看板", "高速道路",
	"親子", "兄弟", "姉妹", "双子", "夫婦", "同級生",
	"塩", "コショウ", "トウガラシ", "しょうゆ", "バジル", "砂糖",
	"弁護士", "国会議員", "建築家", "看護師", "教師", "パイロット",
	"コーヒー", "マグカップ", "ビール", "ワイン", "ポップコーン", "紙コップ",
	"サイコロ", "チェス", "トランプ", "ボードゲーム", "パズル", "カジノ",
	"小麦", "トウモロコシ", "そら豆", "ピーナッツ", "牛乳", "米",
	"せっけん", "洗剤", "スポンジ", "歯ブラシ", "タオル", "洗濯機",
	"スプーン", "フォーク", "ナイフ", "はし", "お皿", "コップ",
	"カレンダー", "目覚まし時計", "砂時計", "コンパス", "影", "季節",
	"駐車場", "テニスコート", "住宅地", "畑", "チョコレート", "方眼紙",
	"ボールペン", "ふで", "ノート", "鉛筆", "絵の具", "定規",
	"誕生日", "プレゼント", "クリスマス", "パーティ", "結婚式", "お墓",
	"山", "川", "森", "火山", "海", "池",
	"丸太", "ストロー", "試験管", "望遠鏡", "つえ", "かさ",
	"のこぎり", "かなづち", "はさみ", "カッター", "オノ", "つるはし",
	"オリンピック", "ワールドカップ", "マラソン", "水泳", "トライアスロン",
	"電気", "磁石", "重力", "かみなり", "原子力", "熱",
	"テント", "ランプ", "寝袋", "リュックサック", "ロープ", "キャンプ",
	"幽霊", "ろうそく", "ゾンビ", "ピラミッド", "吸血鬼", "血",
	"ダイナマイト", "拳銃", "ブーメラン", "弓矢", "日本刀", "戦車",
	"天気予報", "ニュース", "アナウンサー", "コマーシャル", "俳優", "芸人",
	"国境", "会議", "地球温暖化", "歴史", "文化", "文明",
	"ざる", "つぼ", "バケツ", "カゴ", "どんぶり", "ゴミ箱",
}
