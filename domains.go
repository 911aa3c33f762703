package metasearch

// EncyclopediaDomains are the registrable domains classified as Encyclopedia.
var EncyclopediaDomains = NewDomainSet(
	"wikipedia.org",
)

// FamousNewsAgencyDomains are the wire services classified as FamousNewsAgency.
var FamousNewsAgencyDomains = NewDomainSet(
	"xinhuanet.com",
	"reuters.com",
	"ria.ru",
	"prnewswire.com",
	"apnews.com",
	"tass.com",
	"tass.ru",
	"ansa.it",
	"yna.co.kr",
	"aljazeera.com",
	"aljazeera.net",
	"upi.com",
	"afp.com",
	"irna.ir",
	"aa.com.tr",
	"alternet.org",
	"antaranews.com",
	"newswire.ca",
	"jiji.com",
	"focustaiwan.tw",
	"cna.com.tw",
	"efe.com",
	"ipsnews.net",
	"newswise.com",
	"agi.it",
	"belta.by",
	"telam.com.ar",
	"ukrinform.net",
	"ukrinform.ua",
	"trend.az",
	"kyodonews.net",
	"kyodonews.jp",
	"bernama.com",
	"sana.sy",
	"pap.pl",
	"mediafax.ro",
	"iha.com.tr",
	"apa.az",
	"azertag.az",
	"ptinews.com",
	"kuna.net.kw",
	"dpa.com",
	"apa.at",
	"agerpres.ro",
	"unian.info",
	"interfax.com",
	"aps.dz",
	"amna.gr",
	"akipress.com",
	"centralasia.media",
	"armenpress.am",
	"uniindia.com",
	"thecanadianpress.com",
	"fides.org",
	"lusa.pt",
	"tanjug.rs",
	"anp.nl",
	"wafa.ps",
	"ians.in",
	"mti.hu",
	"bna.bh",
	"pna.gov.ph",
	"sta.si",
	"vnanet.vn",
	"tt.se",
	"petra.gov.jo",
	"aap.com.au",
	"notimex.mx",
	"avn.info.ve",
	"bnonews.com",
	"bta.bg",
	"app.com.pk",
	"bns.lt",
	"pa.media",
	"bssnews.net",
	"baptistnews.com",
	"cna.org.cy",
	"belapan.by",
	"moldpres.md",
	"belga.be",
	"tap.info.tn",
	"hina.hr",
	"mapnews.ma",
	"bns.ee",
	"pressenza.com",
	"abi.bo",
	"mia.mk",
	"ntb.no",
	"acn.com.ve",
	"abnnewswire.net",
	"bolpress.com",
	"montsame.mn",
	"kurdpress.com",
	"stt.fi",
	"ata.gov.al",
	"catalannews.com",
	"acn.cat",
	"frifagbevegelse.no",
	"bakhtarnews.com.af",
	"pina.com.fj",
	"zumapress.com",
	"nampa.org",
	"akp.gov.kh",
	"afghanislamicpress.com",
	"unbnews.org",
	"wna-news.com",
	"latviannewsservice.lv",
	"csrwire.ca",
	"ebc.com.br",
	"ppinewsagency.com",
	"aninews.in",
	"indymedia.org",
)

// OnlineNewsAgencyDomains are the mainstream outlets classified as OnlineNewsAgency.
var OnlineNewsAgencyDomains = NewDomainSet(
	"nbcnews.com",
	"time.com",
	"allafrica.com",
	"africaonline.com.na",
	"thenewhumanitarian.org",
	"panapress.com",
	"bbc.com",
	"cnn.com",
	"buenosairesherald.com",
	"clarin.com",
	"folha.uol.com.br",
	"estadao.com.br",
	"theglobeandmail.com",
	"cbc.ca",
	"ctv.ca",
	"ctvnews.ca",
	"emol.com",
	"latercera.com",
	"eluniversal.com.mx",
	"voanews.com",
	"abcnews.go.com",
	"eluniversal.com",
	"people.com.cn",
	"taipeitimes.com",
	"indiatimes.com",
	"indianexpress.com",
	"koreatimes.co.kr",
	"nst.com.my",
	"kantipuronline.com",
	"abs-cbn.com",
	"manilatimes.net",
	"philstar.com",
	"bangkokpost.com",
	"nationmultimedia.com",
	"dw.com",
	"spiegel.de",
	"rnw.org",
	"tdg.ch",
	"sverigesradio.se",
	"hurriyetdailynews.com",
	"ahram.org.eg",
	"palestine-info.net",
	"haaretz.com",
	"abc.net.au",
	"nytimes.com",
	"theguardian.com",
	"washingtonpost.com",
	"dailymail.co.uk",
	"kompas.com",
	"ltn.com.tw",
	"usatoday.com",
	"wsj.com",
	"telegraph.co.uk",
	"chinadaily.com.cn",
	"independent.co.uk",
	"elpais.com",
	"marca.com",
	"latimes.com",
	"nypost.com",
	"manoramaonline.com",
	"ft.com",
	"chron.com",
	"repubblica.it",
	"inquirer.net",
	"thesun.co.uk",
	"lemonde.fr",
	"mirror.co.uk",
	"nikkei.com",
	"elbalad.news",
	"express.co.uk",
	"elmundo.es",
	"as.com",
	"bild.de",
	"asahi.com",
	"lefigaro.fr",
	"kp.ru",
	"thehill.com",
	"hurriyet.com.tr",
	"chicagotribune.com",
	"udn.com",
	"welt.de",
	"infobae.com",
	"hollywoodreporter.com",
	"corriere.it",
	"thehindu.com",
	"prothomalo.com",
	"smh.com.au",
	"nydailynews.com",
	"abc.es",
	"mathrubhumi.com",
	"metro.co.uk",
	"scmp.com",
	"thetimes.co.uk",
	"chosun.com",
	"hindustantimes.com",
	"dawn.com",
	"milliyet.com.tr",
	"lun.com",
	"zeit.de",
	"donga.com",
	"thestar.com",
	"denverpost.com",
	"lanacion.com.ar",
	"axs.com",
	"hpenews.com",
	"sueddeutsche.de",
	"idnes.cz",
	"csmonitor.com",
	"bostonglobe.com",
	"japantimes.co.jp",
	"rg.ru",
	"standard.co.uk",
	"mk.ru",
	"washingtontimes.com",
	"mercurynews.com",
	"aksam.com.tr",
	"seattletimes.com",
	"ce.cn",
	"irishtimes.com",
	"gazzetta.it",
	"startribune.com",
	"leparisien.fr",
	"lavanguardia.com",
	"chinatimes.com",
	"dallasnews.com",
	"azcentral.com",
	"theage.com.au",
	"faz.net",
	"yomiuri.co.jp",
	"abola.pt",
	"sozcu.com.tr",
	"20minutos.es",
	"jpost.com",
	"iz.ru",
	"appledaily.com",
	"oregonlive.com",
	"miamiherald.com",
	"business-standard.com",
	"nation.africa",
	"baltimoresun.com",
	"aif.ru",
	"livemint.com",
	"sabah.com.tr",
	"straitstimes.com",
	"lequipe.fr",
	"ajc.com",
	"mainichi.jp",
	"liberation.fr",
	"yenisafak.com",
	"elcomercio.com",
	"independent.ie",
	"andhrajyothy.com",
	"theaustralian.com.au",
	"nzherald.co.nz",
	"freep.com",
	"aftonbladet.se",
	"theonion.com",
	"mundodeportivo.com",
	"gazeta.pl",
	"newsday.com",
	"standardmedia.co.ke",
	"lastampa.it",
	"punchng.com",
	"nationalpost.com",
	"cleveland.com",
	"kommersant.ru",
	"post-gazette.com",
	"alwafd.news",
	"nouvelobs.com",
	"ynet.co.il",
	"tempo.co",
	"dailystar.co.uk",
	"vg.no",
	"sacbee.com",
	"20minutes.fr",
	"derstandard.at",
	"gulfnews.com",
	"tagesspiegel.de",
	"inquirer.com",
	"thestar.com.my",
	"sakshi.com",
	"elcomercio.pe",
	"thenews.com.pk",
	"scotsman.com",
	"eltiempo.com",
	"ilsole24ore.com",
	"thenationalnews.com",
	"iol.co.za",
	"sun-sentinel.com",
	"vanguardngr.com",
	"sport.es",
	"handelsblatt.com",
	"prensalibre.com",
	"orlandosentinel.com",
	"jsonline.com",
	"stltoday.com",
	"ocregister.com",
	"tampabay.com",
	"lesechos.fr",
	"sfchronicle.com",
	"nikkansports.com",
	"ouest-france.fr",
	"eenadu.net",
	"sapo.pt",
	"bostonherald.com",
	"heraldsun.com.au",
	"vedomosti.ru",
	"bhaskar.com",
	"detroitnews.com",
	"investors.com",
	"sport-express.ru",
	"avaz.ba",
	"eleconomista.es",
	"theadvocate.com",
	"manchestereveningnews.co.uk",
	"expressen.se",
	"thejakartapost.com",
	"sltrib.com",
	"elperiodico.com",
	"kansascity.com",
	"diariolibre.com",
	"financialexpress.com",
	"dailytelegraph.com.au",
	"ycwb.com",
	"expansion.com",
	"reviewjournal.com",
	"pravda.ru",
	"20min.ch",
	"afr.com",
	"seattlepi.com",
	"dagbladet.no",
	"observer.com",
	"nzz.ch",
	"eluniverso.com",
	"vancouversun.com",
	"khaleejtimes.com",
	"hankyung.com",
)

// DefaultBlocklist holds domains serving video content, dropped before classification.
var DefaultBlocklist = NewDomainSet(
	"youtube.com",
)
